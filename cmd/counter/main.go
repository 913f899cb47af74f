package main

import (
	"crypto/ed25519"

	"github.com/sirupsen/logrus"

	"github.com/EGORAGANIN/solana-counter/pkg/client"
	"github.com/EGORAGANIN/solana-counter/pkg/solana"
)

func main() {
	log := logrus.StandardLogger()

	config, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	logLevel, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(logLevel)

	if err := run(config, log); err != nil {
		log.WithError(err).Fatal("driver failed")
	}
}

func run(config *Config, log *logrus.Logger) error {
	user, err := client.LoadKeypair(config.UserKeypairFile)
	if err != nil {
		return err
	}
	admin, err := client.LoadKeypair(config.AdminKeypairFile)
	if err != nil {
		return err
	}

	log.WithField("endpoint", config.SolanaRPCEndpoint).Info("connecting to rpc node")
	sol := solana.New(config.SolanaRPCEndpoint)

	driver, err := client.New(sol, user, admin, solana.CommitmentFinalized)
	if err != nil {
		return err
	}

	adminPub := admin.Public().(ed25519.PublicKey)

	log.WithFields(logrus.Fields{
		"inc_step": config.IncStep,
		"dec_step": config.DecStep,
	}).Info("updating settings")
	if err := driver.UpdateSettings(adminPub, config.IncStep, config.DecStep); err != nil {
		return err
	}

	settings, err := driver.GetSettings()
	if err != nil {
		return err
	}
	log.WithField("settings", settings.String()).Info("settings")

	if err := driver.EnsureCounterAccount(); err != nil {
		return err
	}

	for _, step := range []struct {
		name string
		run  func() error
	}{
		{"increment", driver.Increment},
		{"decrement", driver.Decrement},
		{"reset", driver.Reset},
	} {
		log.WithField("operation", step.name).Info("submitting")
		if err := step.run(); err != nil {
			return err
		}

		state, err := driver.GetCounter()
		if err != nil {
			return err
		}
		log.WithField("counter", state.String()).Info("counter")
	}

	return nil
}
