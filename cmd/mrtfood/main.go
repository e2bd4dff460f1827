package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lithammer/shortuuid/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/hellboyz13/mrtfood/internal/profile"
	"github.com/hellboyz13/mrtfood/internal/version"
	"github.com/hellboyz13/mrtfood/server"
	hoursrunner "github.com/hellboyz13/mrtfood/server/runner/hours"
	"github.com/hellboyz13/mrtfood/store"
	"github.com/hellboyz13/mrtfood/store/db"
)

const (
	greetingBanner = `mrtfood - food places around the MRT, with normalized opening hours.`
)

var (
	rootCmd = &cobra.Command{
		Use:   "mrtfood",
		Short: "A directory service for food places near MRT stations",
		Run: func(_ *cobra.Command, _ []string) {
			instanceProfile, err := loadProfile()
			if err != nil {
				slog.Error("failed to load profile", slog.Any("error", err))
				return
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			storeInstance, err := openStore(ctx, instanceProfile)
			if err != nil {
				slog.Error("failed to open store", slog.Any("error", err))
				return
			}

			s, err := server.NewServer(ctx, instanceProfile, storeInstance)
			if err != nil {
				cancel()
				slog.Error("failed to create server", slog.Any("error", err))
				return
			}

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			go func() {
				sig := <-c
				slog.Info("received signal, shutting down", slog.String("signal", sig.String()))
				s.Shutdown(ctx)
				cancel()
			}()

			printGreetings(instanceProfile)

			if err := s.Start(ctx); err != nil {
				slog.Error("failed to start server", slog.Any("error", err))
				cancel()
			}

			// Wait for CTRL-C.
			<-ctx.Done()
		},
	}

	normalizeHoursCmd = &cobra.Command{
		Use:   "normalize-hours",
		Short: "Run one pass of the opening-hours normalizer and print a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			instanceProfile, err := loadProfile()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			storeInstance, err := openStore(ctx, instanceProfile)
			if err != nil {
				return err
			}
			defer storeInstance.Close()

			report, err := hoursrunner.NewRunner(storeInstance).RunOnce(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("converted: %d\nskipped: %d\n", report.Converted, report.Skipped)
			if len(report.UnparsedExamples) > 0 {
				fmt.Println("unrecognized formats (sample):")
				for _, example := range report.UnparsedExamples {
					fmt.Printf("  %s: %q\n", example.UID, example.RawHours)
				}
			}
			return nil
		},
	}

	importCmd = &cobra.Command{
		Use:   "import <file>",
		Short: "Import stations and places from a JSON seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instanceProfile, err := loadProfile()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			storeInstance, err := openStore(ctx, instanceProfile)
			if err != nil {
				return err
			}
			defer storeInstance.Close()

			return runImport(ctx, storeInstance, args[0])
		},
	}
)

func loadProfile() (*profile.Profile, error) {
	instanceProfile := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Data:    viper.GetString("data"),
		Driver:  viper.GetString("driver"),
		DSN:     viper.GetString("dsn"),
		Version: version.GetCurrentVersion(viper.GetString("mode")),
	}
	if err := instanceProfile.Validate(); err != nil {
		return nil, err
	}
	return instanceProfile, nil
}

func openStore(ctx context.Context, instanceProfile *profile.Profile) (*store.Store, error) {
	driver, err := db.NewDBDriver(instanceProfile)
	if err != nil {
		return nil, err
	}
	storeInstance := store.New(driver, instanceProfile)
	if err := storeInstance.Migrate(ctx); err != nil {
		return nil, err
	}
	return storeInstance, nil
}

type seedFile struct {
	Stations []struct {
		Code      string  `json:"code"`
		Name      string  `json:"name"`
		Line      string  `json:"line"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"stations"`
	Places []struct {
		Name        string  `json:"name"`
		Address     string  `json:"address"`
		StationCode string  `json:"stationCode"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		RawHours    string  `json:"rawHours"`
	} `json:"places"`
}

func runImport(ctx context.Context, storeInstance *store.Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	seed := &seedFile{}
	if err := json.Unmarshal(raw, seed); err != nil {
		return err
	}

	for _, station := range seed.Stations {
		if _, err := storeInstance.CreateStation(ctx, &store.Station{
			Code:      station.Code,
			Name:      station.Name,
			Line:      station.Line,
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
		}); err != nil {
			return err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)
	for _, place := range seed.Places {
		create := &store.Place{
			UID:         shortuuid.New(),
			RowStatus:   store.Normal,
			Name:        place.Name,
			Address:     place.Address,
			StationCode: place.StationCode,
			Latitude:    place.Latitude,
			Longitude:   place.Longitude,
		}
		if place.RawHours != "" {
			rawHours := place.RawHours
			create.RawHours = &rawHours
		}
		group.Go(func() error {
			_, err := storeInstance.CreatePlace(groupCtx, create)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	slog.Info("import finished",
		slog.Int("stations", len(seed.Stations)),
		slog.Int("places", len(seed.Places)))
	return nil
}

func printGreetings(instanceProfile *profile.Profile) {
	fmt.Println(greetingBanner)
	fmt.Printf("version %s, mode %s, driver %s\n", instanceProfile.Version, instanceProfile.Mode, instanceProfile.Driver)
	fmt.Printf("listening on %s:%d\n", instanceProfile.Addr, instanceProfile.Port)
}

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8081)

	rootCmd.PersistentFlags().String("mode", "dev", `mode of the server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")

	if err := viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("dsn", rootCmd.PersistentFlags().Lookup("dsn")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("mrtfood")
	viper.AutomaticEnv()
}

func main() {
	rootCmd.AddCommand(normalizeHoursCmd)
	rootCmd.AddCommand(importCmd)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
