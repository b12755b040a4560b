package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/logger"
	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
	"github.com/jobmatch-io/jobmatch-cli/internal/session"
)

// appDeps wires the components every command needs: config, logger,
// credential keeper, API client and session store.
type appDeps struct {
	logger *zap.Logger
	config *Config
	keeper *session.FileKeeper
	hub    *matchhub.Client
	store  *session.Store
}

func newAppDeps() (*appDeps, error) {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}

	// Env-bound keys are not always visible to Unmarshal, so fall back
	// to viper directly before applying defaults.
	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = strings.TrimSpace(viper.GetString("api-url"))
	}

	tokenFile := config.TokenFile
	if tokenFile == "" {
		tokenFile = strings.TrimSpace(viper.GetString("token-file"))
	}
	if tokenFile == "" {
		tokenFile, err = defaultTokenFile()
		if err != nil {
			return nil, fmt.Errorf("resolving token file location: %w", err)
		}
	}

	keeper := session.NewFileKeeper(tokenFile)
	hub := matchhub.New(zl, keeper, apiURL)
	store := session.New(hub, keeper, zl)

	store.Subscribe(func(snap session.Snapshot) {
		zl.Debug("session transition", zap.Stringer("state", snap.State))
	})

	return &appDeps{
		logger: zl,
		config: config,
		keeper: keeper,
		hub:    hub,
		store:  store,
	}, nil
}

// fatalSetup reports a failure that happened before a logger exists.
func fatalSetup(err error) {
	log.Fatal(err)
}

func defaultTokenFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", app, "token"), nil
}
