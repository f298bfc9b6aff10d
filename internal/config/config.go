package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Configuration identifies the remote project this client talks to. All ids
// are opaque strings minted by the platform's console; no validation beyond
// presence is possible on this side. Set once at startup, never mutated.
type Configuration struct {
	// Endpoint is the base URL of the platform's REST API.
	Endpoint *url.URL
	// Platform is the application (bundle) identifier sent with every request.
	Platform  string
	ProjectID string
	// DatabaseID and the two collection ids locate the user and video
	// document collections inside the managed database.
	DatabaseID        string
	UserCollectionID  string
	VideoCollectionID string
	// StorageID is the bucket under which all uploaded files are grouped.
	StorageID string
}

// ReadConfig loads the configuration from aora.yaml in the working directory,
// allowing AORA_* environment variables to override individual keys.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("aora")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("aora")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("endpoint", "https://cloud.appwrite.io/v1")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
		// No file is fine as long as the environment carries everything.
	}

	cfg := Configuration{
		Platform:          v.GetString("platform"),
		ProjectID:         v.GetString("project"),
		DatabaseID:        v.GetString("database"),
		UserCollectionID:  v.GetString("usercollection"),
		VideoCollectionID: v.GetString("videocollection"),
		StorageID:         v.GetString("storage"),
	}

	endpoint, err := url.Parse(v.GetString("endpoint"))
	if err != nil {
		return cfg, fmt.Errorf("bad endpoint url: %w", err)
	}
	cfg.Endpoint = endpoint

	return cfg, errors.Join(
		required("platform", cfg.Platform),
		required("project", cfg.ProjectID),
		required("database", cfg.DatabaseID),
		required("usercollection", cfg.UserCollectionID),
		required("videocollection", cfg.VideoCollectionID),
		required("storage", cfg.StorageID),
	)
}

func required(key, value string) error {
	if value == "" {
		return fmt.Errorf("missing configuration key %q", key)
	}
	return nil
}
