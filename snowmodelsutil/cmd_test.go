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
	"bytes"
	"strings"
	"testing"
)

func TestEmodCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"emod", "--density", "250", "--unit", "MPa"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Gerling", "Bergfeld", "Herwijnen", "Scapozza", "Sigrist", "MPa"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should mention %q:\n%s", want, out)
		}
	}
}

func TestEmodCmdInvalidUnit(t *testing.T) {
	Root.SetOutput(new(bytes.Buffer))
	Root.SetArgs([]string{"emod", "--density", "250", "--unit", "bar"})
	err := Root.Execute()
	if err == nil {
		t.Fatal("an unsupported unit should cause an error")
	}
	if !strings.Contains(err.Error(), "bar") {
		t.Errorf("error %q should name the unsupported unit", err)
	}
}

func TestCrackCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"crack",
		"--gravity", "9.81", "--emod", "1e7", "--thickness", "0.5",
		"--collapse", "0.003", "--density", "200"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"solitary wave speed", "touchdown distance", "fracture speed bounds"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should mention %q:\n%s", want, out)
		}
	}
}

func TestWaveCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"wave", "--emod", "1e6", "--density", "200", "--poisson", "0.25"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"longitudinal", "shear", "Rayleigh"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should mention %q:\n%s", want, out)
		}
	}
}
