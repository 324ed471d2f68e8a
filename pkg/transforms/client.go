package transforms

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var transforms []*TransformDefinition

// SetupClient loads every .yaml file under directory. Each file holds one or
// more YAML documents, each a TransformDefinition. A missing directory leaves
// no transforms loaded.
func SetupClient(directory string) error {
	loaded := []*TransformDefinition{}

	if _, err := os.Stat(directory); errors.Is(err, os.ErrNotExist) {
		log.Info().Str("directory", directory).Msg("No transforms directory, skipping")
		transforms = loaded
		return nil
	}

	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading transforms file")

			transformYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			definitions, err := decodeDefinitions(transformYaml)
			if err != nil {
				return err
			}

			loaded = append(loaded, definitions...)

			return nil
		})
	if err != nil {
		return err
	}

	transforms = loaded

	log.Info().Int("count", len(transforms)).Msg("Loaded transforms")

	return nil
}

func decodeDefinitions(transformYaml []byte) ([]*TransformDefinition, error) {
	definitions := []*TransformDefinition{}
	decoder := yaml.NewDecoder(bytes.NewReader(transformYaml))

	for {
		var definition TransformDefinition
		err := decoder.Decode(&definition)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if err := definition.Compile(); err != nil {
			return nil, err
		}

		definitions = append(definitions, &definition)
	}

	return definitions, nil
}

// SetDefinitions replaces the loaded transforms. Definitions are compiled
// first and none are installed if any fails.
func SetDefinitions(definitions []*TransformDefinition) error {
	for _, definition := range definitions {
		if err := definition.Compile(); err != nil {
			return err
		}
	}

	transforms = definitions

	return nil
}
