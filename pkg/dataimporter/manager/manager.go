package manager

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/config"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataimporter/formats/setouchi"
	"github.com/sourcegraph/conc/pool"
)

// LoadTimetable reads every dataset concurrently and builds a new Timetable.
// The version is a SHA-256 over the raw bytes of every dataset read, so any
// change to any file yields a new version.
func LoadTimetable(cfg config.DataConfig) (*ctdf.Timetable, error) {
	datasets := GetDataSets(cfg)

	timetable := &ctdf.Timetable{
		Sailings:  []*ctdf.Sailing{},
		Operators: []*ctdf.Operator{},
		Stops:     []*ctdf.Stop{},
		Fares:     []*ctdf.FareSummary{},
		Islands:   []*ctdf.Island{},
	}

	for _, islandConfig := range cfg.Islands {
		directory := cfg.IslandPath(islandConfig.Folder)
		if info, err := os.Stat(directory); err != nil || !info.IsDir() {
			log.Warn().Str("island", islandConfig.Name).Str("directory", directory).Msg("Island data folder not found, skipping island")
			continue
		}

		timetable.Islands = append(timetable.Islands, &ctdf.Island{
			Name:            islandConfig.Name,
			NameEn:          islandConfig.Folder,
			Notes:           islandConfig.Notes,
			BicycleRentals:  []*ctdf.BicycleRental{},
			BusSchedules:    []*ctdf.BusSchedule{},
			OtherTransports: []*ctdf.OtherTransport{},
		})
		datasets = append(datasets, GetIslandDataSets(cfg, islandConfig)...)
	}

	contents := make([][]byte, len(datasets))

	p := pool.New().WithErrors()

	for i, dataset := range datasets {
		p.Go(func() error {
			data, err := readDataset(dataset)
			if err != nil {
				return err
			}
			contents[i] = data

			return importDataset(dataset, data, timetable)
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	hash := sha256.New()
	for i, dataset := range datasets {
		hash.Write([]byte(dataset.Identifier))
		hash.Write(contents[i])
	}

	timetable.Version = fmt.Sprintf("%x", hash.Sum(nil))
	timetable.LoadedAt = time.Now()
	timetable.DataSource = &ctdf.DataSource{
		OriginalFormat: string(DataSetFormatSetouchiTimetable),
		Provider:       setouchiProvider.Name,
		Dataset:        cfg.Directory,
		Identifier:     timetable.Version,
	}

	log.Info().
		Str("version", timetable.Version).
		Int("sailings", len(timetable.Sailings)).
		Int("operators", len(timetable.Operators)).
		Int("stops", len(timetable.Stops)).
		Int("fares", len(timetable.Fares)).
		Int("islands", len(timetable.Islands)).
		Msg("Loaded timetable")

	return timetable, nil
}

func readDataset(dataset DataSet) ([]byte, error) {
	data, err := os.ReadFile(dataset.Source)

	if errors.Is(err, os.ErrNotExist) && !dataset.Required {
		// Islands routinely lack some transport files
		level := zerolog.WarnLevel
		if dataset.Island != "" {
			level = zerolog.DebugLevel
		}

		log.WithLevel(level).Str("id", dataset.Identifier).Str("source", dataset.Source).Msg("Optional dataset missing, continuing without it")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s dataset: %w", dataset.Identifier, err)
	}

	return data, nil
}

// importDataset writes only the field of timetable belonging to the dataset's
// format, so concurrent imports never touch the same field.
func importDataset(dataset DataSet, data []byte, timetable *ctdf.Timetable) error {
	var err error

	switch dataset.Format {
	case DataSetFormatSetouchiTimetable:
		timetable.Sailings, err = setouchi.ParseTimetable(data)
	case DataSetFormatSetouchiCompanies:
		timetable.Operators, err = setouchi.ParseCompanies(data)
	case DataSetFormatSetouchiPorts:
		timetable.Stops, err = setouchi.ParsePorts(data)
	case DataSetFormatSetouchiFares:
		timetable.Fares, err = setouchi.ParseFares(data)
	case DataSetFormatIslandBicycleRentals, DataSetFormatIslandBusTimetable, DataSetFormatIslandOtherTransport, DataSetFormatIslandSummary:
		err = importIslandDataset(dataset, data, timetable.GetIsland(dataset.Island))
	default:
		return fmt.Errorf("unrecognised format %s", dataset.Format)
	}

	if err != nil {
		return fmt.Errorf("parsing %s dataset: %w", dataset.Identifier, err)
	}

	return nil
}

// importIslandDataset fills the island field matching the dataset's format.
// Island transport is supplementary, so a file that fails to parse is logged
// and leaves the field as the empty list it started as.
func importIslandDataset(dataset DataSet, data []byte, island *ctdf.Island) error {
	if island == nil {
		return fmt.Errorf("no island %s for dataset %s", dataset.Island, dataset.Identifier)
	}
	if data == nil {
		return nil
	}

	var err error

	switch dataset.Format {
	case DataSetFormatIslandBicycleRentals:
		var rentals []*ctdf.BicycleRental
		if rentals, err = setouchi.ParseBicycleRentals(data); err == nil {
			island.BicycleRentals = rentals
		}
	case DataSetFormatIslandBusTimetable:
		var schedules []*ctdf.BusSchedule
		if schedules, err = setouchi.ParseBusTimetable(data); err == nil {
			island.BusSchedules = schedules
		}
	case DataSetFormatIslandOtherTransport:
		var transports []*ctdf.OtherTransport
		if transports, err = setouchi.ParseOtherTransport(data); err == nil {
			island.OtherTransports = transports
		}
	case DataSetFormatIslandSummary:
		island.Summary = setouchi.ParseIslandSummary(data)
	}

	if err != nil {
		log.Error().Err(err).Str("id", dataset.Identifier).Msg("Failed to parse island dataset, continuing without it")
	}

	return nil
}

// Reload loads a fresh timetable and swaps it into store. On failure store
// keeps serving the previous timetable.
func Reload(cfg config.DataConfig, store *ctdf.TimetableStore) (*ctdf.Timetable, error) {
	timetable, err := LoadTimetable(cfg)
	if err != nil {
		return nil, err
	}

	previous := store.Swap(timetable)
	if previous != nil && previous.Version == timetable.Version {
		log.Info().Str("version", timetable.Version).Msg("Timetable reloaded with no changes")
	}

	return timetable, nil
}
