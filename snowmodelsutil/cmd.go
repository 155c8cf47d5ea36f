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

// Package snowmodelsutil holds the command-line interface for the
// snow-models parametrization library.
package snowmodelsutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	snowmodels "github.com/bbergfeld/snow-models"
	"github.com/bbergfeld/snow-models/crack"
	"github.com/bbergfeld/snow-models/mech"
	"github.com/bbergfeld/snow-models/wave"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	// Options are the configuration options available to snow-models.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "density",
			usage: `
              density specifies the mean slab density [kg/m³].`,
			shorthand:  "d",
			defaultVal: 250.0,
			flagsets:   []*pflag.FlagSet{emodCmd.Flags(), crackCmd.Flags(), waveCmd.Flags()},
		},
		{
			name: "unit",
			usage: `
              unit specifies the output unit for elastic moduli.
              Supported values are Pa, kPa, MPa and GPa.`,
			shorthand:  "u",
			defaultVal: "Pa",
			flagsets:   []*pflag.FlagSet{emodCmd.Flags()},
		},
		{
			name: "scale-e",
			usage: `
              scale-e is the elastic modulus [Pa] of a measured data point.
              If both scale-e and scale-rho are set, every parametrization is
              anchored through that measurement before evaluation.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{emodCmd.Flags()},
		},
		{
			name: "scale-rho",
			usage: `
              scale-rho is the density [kg/m³] of a measured data point; see
              scale-e.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{emodCmd.Flags()},
		},
		{
			name: "gravity",
			usage: `
              gravity specifies the gravitational acceleration [m/s²].`,
			defaultVal: snowmodels.Gravity,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags()},
		},
		{
			name: "emod",
			usage: `
              emod specifies the slab elastic modulus [Pa].`,
			shorthand:  "e",
			defaultVal: 1.0e6,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags(), waveCmd.Flags()},
		},
		{
			name: "thickness",
			usage: `
              thickness specifies the slab thickness [m].`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags()},
		},
		{
			name: "collapse",
			usage: `
              collapse specifies the weak layer collapse height [m].`,
			defaultVal: 0.003,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags()},
		},
		{
			name: "poisson",
			usage: `
              poisson specifies the slab Poisson ratio [-].`,
			defaultVal: 0.25,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags(), waveCmd.Flags()},
		},
		{
			name: "slope",
			usage: `
              slope specifies the slope angle [degrees] for the anticrack
              dispersion relation.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags()},
		},
		{
			name: "touchdown",
			usage: `
              touchdown specifies a touchdown length [m] for the anticrack
              dispersion relation. If zero, the anticrack speed is not
              computed.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags()},
		},
		{
			name: "guess",
			usage: `
              guess specifies the initial guess for the dimensionless speed
              ratio when solving the anticrack dispersion relation.`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{crackCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SNOWMODELS")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(emodCmd)
	Root.AddCommand(crackCmd)
	Root.AddCommand(waveCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("snowmodels: problem reading configuration file: %v", err)
		}
		logger.WithField("config", cfgpath).Info("loaded configuration file")
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "snowmodels",
	Short: "Parametrizations of snow mechanical properties.",
	Long: `snowmodels evaluates published closed-form parametrizations used in
snow and avalanche research: elastic modulus estimates from snow density,
crack propagation speeds in collapsing weak layers, and elastic wave speeds.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'SNOWMODELS_var' where
'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of snow-models.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("snow-models v%s\n", snowmodels.Version)
	},
	DisableAutoGenTag: true,
}

var emodCmd = &cobra.Command{
	Use:   "emod",
	Short: "Estimate the slab elastic modulus from density.",
	Long: `emod evaluates every published elastic modulus parametrization at
the given density and prints one estimate per publication in the requested
unit. Providing scale-e and scale-rho anchors each parametrization through a
measured data point first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rho := GetFloat64("density", Cfg)
		u := mech.Unit(Cfg.GetString("unit"))
		scaleE := GetFloat64("scale-e", Cfg)
		scaleRho := GetFloat64("scale-rho", Cfg)

		var em mech.ElasticModuli
		var err error
		if scaleE > 0 && scaleRho > 0 {
			em, err = mech.ScaledElasticModulus(rho, u, mech.Measurement{E: scaleE, Rho: scaleRho})
		} else {
			em, err = mech.ElasticModulus(rho, u)
		}
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"density": rho,
			"unit":    u,
		}).Info("evaluated elastic modulus parametrizations")

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Gerling et al. 2017 (AC):      %g %s\n", em.Gerling2017AC, em.Unit)
		fmt.Fprintf(w, "Gerling et al. 2017 (CT):      %g %s\n", em.Gerling2017CT, em.Unit)
		fmt.Fprintf(w, "Bergfeld et al. 2023:          %g %s\n", em.Bergfeld2023, em.Unit)
		fmt.Fprintf(w, "van Herwijnen et al. 2016:     %g %s\n", em.VanHerwijnen2016, em.Unit)
		fmt.Fprintf(w, "Scapozza 2004:                 %g %s\n", em.Scapozza2004, em.Unit)
		fmt.Fprintf(w, "Sigrist 2006:                  %g %s\n", em.Sigrist2006, em.Unit)
		return nil
	},
	DisableAutoGenTag: true,
}

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Estimate weak layer crack propagation properties.",
	Long: `crack computes the solitary fracture wave speed and touchdown
distance after Heierli (2005) and the McClung (2005) fracture speed bounds
for the given slab. If a touchdown length is provided, the anticrack
dispersion relation is additionally solved for the propagation speed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := GetFloat64("gravity", Cfg)
		e := GetFloat64("emod", Cfg)
		h := GetFloat64("thickness", Cfg)
		hf := GetFloat64("collapse", Cfg)
		rho := GetFloat64("density", Cfg)
		nu := GetFloat64("poisson", Cfg)

		w := cmd.OutOrStdout()
		speed := crack.SolitaryWaveSpeed(g, e, h, hf, rho)
		tdd := crack.SolitaryWaveTouchdown(g, e, h, hf, rho)
		fmt.Fprintf(w, "solitary wave speed:     %v\n", snowmodels.MetersPerSecond(speed))
		fmt.Fprintf(w, "touchdown distance:      %v\n", snowmodels.Meters(tdd))

		low, high := crack.FractureSpeedBounds(nu, e, rho)
		fmt.Fprintf(w, "fracture speed bounds:   %v to %v\n",
			snowmodels.MetersPerSecond(low), snowmodels.MetersPerSecond(high))

		if l := GetFloat64("touchdown", Cfg); l > 0 {
			theta := GetFloat64("slope", Cfg)
			guess := GetFloat64("guess", Cfg)
			c, err := crack.AnticrackSpeed(g, e, nu, h, hf, rho, theta, l, guess)
			if err != nil {
				logger.WithError(err).WithField("guess", guess).Error("solving the anticrack dispersion relation")
				return err
			}
			fmt.Fprintf(w, "anticrack speed:         %v\n", snowmodels.MetersPerSecond(c))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var waveCmd = &cobra.Command{
	Use:   "wave",
	Short: "Estimate elastic wave speeds in the slab.",
	Long: `wave computes the longitudinal, shear and Rayleigh wave speeds for
a slab with the given elastic modulus, density and Poisson ratio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetFloat64("emod", Cfg)
		rho := GetFloat64("density", Cfg)
		nu := GetFloat64("poisson", Cfg)
		gs := wave.ShearModulus(e, nu)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "longitudinal wave speed: %v\n", snowmodels.MetersPerSecond(wave.LongitudinalWaveSpeed(e, rho)))
		fmt.Fprintf(w, "shear wave speed:        %v\n", snowmodels.MetersPerSecond(wave.ShearWaveSpeed(gs, rho)))
		fmt.Fprintf(w, "Rayleigh wave speed:     %v\n", snowmodels.MetersPerSecond(wave.RayleighWaveSpeed(gs, rho, nu)))
		return nil
	},
	DisableAutoGenTag: true,
}
