/*
Copyright © 2025 the snow-models authors.
This file is part of snow-models.

snow-models is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

snow-models is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with snow-models.  If not, see <http://www.gnu.org/licenses/>.
*/

package snowmodelsutil

import (
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// GetFloat64 returns a float64 stored in the configuration under varName,
// converting from a different type if necessary. Configuration files and
// environment variables may hold numbers as strings.
func GetFloat64(varName string, cfg *viper.Viper) float64 {
	return cast.ToFloat64(cfg.Get(varName))
}

// GetString returns a string stored in the configuration under varName.
func GetString(varName string, cfg *viper.Viper) string {
	return cast.ToString(cfg.Get(varName))
}
