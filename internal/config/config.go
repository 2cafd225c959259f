package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Frontend Frontend `koanf:"frontend"`
	Storage  Storage  `koanf:"storage"`
	Insights Insights `koanf:"insights"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Storage selects the persistence backend. Type is "file" or "sqlite";
// Dir holds the JSON collections for the file backend, Path the
// database file for the sqlite backend.
type Storage struct {
	Type string `koanf:"type"`
	Dir  string `koanf:"dir"`
	Path string `koanf:"path"`
}

type Insights struct {
	APIKey         string `koanf:"apikey"`
	Model          string `koanf:"model"`
	BaseURL        string `koanf:"baseurl"`
	TimeoutSeconds int    `koanf:"timeoutseconds"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "localhost:8080",
		Frontend: Frontend{
			Enabled: true,
		},
		Storage: Storage{
			Type: "file",
			Dir:  "data",
			Path: "data/budgetmaster.db",
		},
		Insights: Insights{
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 30,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "BUDGETMASTER_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "BUDGETMASTER_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
