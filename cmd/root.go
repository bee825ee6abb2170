package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calladine/tidewatch/pkg/sunset"
	"github.com/calladine/tidewatch/pkg/tidal"
	"github.com/calladine/tidewatch/pkg/willyweather"
)

var cfgFile string

// rootCmd fetches, parses, estimates, and renders in one shot.
var rootCmd = &cobra.Command{
	Use:   "tidewatch",
	Short: "Show today's tides for Moonee Beach",
	Long: `Fetches today's tide predictions from WillyWeather, estimates the
current tide height and trend, and prints the day's schedule as a terminal
panel.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(time.Now())
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tidewatch.yaml)")
	rootCmd.Flags().Bool("no-chart", false, "skip the tide curve chart")
	viper.BindPFlag("chart.disabled", rootCmd.Flags().Lookup("no-chart"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tidewatch")
	}

	viper.SetDefault("location.name", willyweather.MooneeBeach.Name)
	viper.SetDefault("location.region", willyweather.MooneeBeach.Region)
	viper.SetDefault("location.slug", willyweather.MooneeBeach.Slug)
	viper.SetDefault("location.timezone", "Australia/Sydney")
	viper.SetDefault("location.lat", sunset.MooneeBeach.Lat)
	viper.SetDefault("location.long", sunset.MooneeBeach.Long)
	viper.SetDefault("chart.width", 60)
	viper.SetDefault("chart.height", 10)

	viper.SetEnvPrefix("tidewatch")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configuredLocation builds the tide page location from config. The defaults
// point at Moonee Beach.
func configuredLocation() (willyweather.Location, error) {
	tz, err := time.LoadLocation(viper.GetString("location.timezone"))
	if err != nil {
		return willyweather.Location{}, fmt.Errorf("bad location.timezone: %w", err)
	}
	return willyweather.Location{
		Name:   viper.GetString("location.name"),
		Region: viper.GetString("location.region"),
		Slug:   viper.GetString("location.slug"),
		TZ:     tz,
	}, nil
}

func configuredPlace(tz *time.Location) sunset.Place {
	return sunset.Place{
		Lat:      viper.GetFloat64("location.lat"),
		Long:     viper.GetFloat64("location.long"),
		Location: tz,
	}
}

// run performs the single fetch → parse → estimate → render pass. Any error
// aborts the whole invocation with no partial output; nothing retries.
func run(now time.Time) error {
	loc, err := configuredLocation()
	if err != nil {
		return err
	}
	now = now.In(loc.TZ)

	fmt.Fprintf(os.Stderr, "Fetching tide data for %s...\n", loc.Name)
	doc, err := willyweather.Fetch(loc)
	if err != nil {
		return err
	}

	sched, err := willyweather.Parse(doc, now, loc.TZ)
	if err != nil {
		return err
	}

	est, err := tidal.At(sched, now)
	if err != nil {
		return err
	}

	rise, set := sunset.Day(now, configuredPlace(loc.TZ))

	fmt.Println(view(loc, sched, est, rise, set, now))
	return nil
}
