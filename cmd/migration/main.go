package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/app/services/core/doctors"
	"context"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const commandTimeout = time.Minute

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "migration",
		Short:         "Manage carelink MongoDB indexes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newUpCommand(), newListCommand())
	return rootCmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create the indexes of the doctors collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDoctorRepository(func(ctx context.Context, repo contracts.DoctorRepository, log *logrus.Logger) error {
				names, err := repo.EnsureIndexes(ctx)
				if err != nil {
					log.WithError(err).Error("Failed to ensure indexes")
					return err
				}
				log.WithField("indexes", names).Infof("Ensured %d indexes", len(names))
				return nil
			})
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the indexes of the doctors collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDoctorRepository(func(ctx context.Context, repo contracts.DoctorRepository, log *logrus.Logger) error {
				names, err := repo.ListIndexes(ctx)
				if err != nil {
					log.WithError(err).Error("Failed to list indexes")
					return err
				}
				for _, name := range names {
					log.WithField("index", name).Info("Found index")
				}
				return nil
			})
		},
	}
}

func withDoctorRepository(run func(ctx context.Context, repo contracts.DoctorRepository, log *logrus.Logger) error) error {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Printf("Error loading driver config: %v", err)
		return err
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Printf("Error loading internal config: %v", err)
		return err
	}

	logrusLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	mongoDB := database.NewMongoDB(driverConfig)
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logrusLogger.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()

	return run(ctx, doctors.NewDoctorMongoRepository(mongoDB), logrusLogger)
}
