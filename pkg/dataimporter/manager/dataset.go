package manager

import (
	"path/filepath"

	"github.com/setoferry/setoferry/pkg/config"
)

type DataSet struct {
	Identifier string
	Format     DataSetFormat

	Provider Provider

	Source string

	// A required dataset that cannot be read fails the whole load
	Required bool

	// Island is the folder of the island an island transport dataset belongs to
	Island string
}

type DataSetFormat string

const (
	DataSetFormatSetouchiTimetable DataSetFormat = "setouchi-timetable"
	DataSetFormatSetouchiCompanies DataSetFormat = "setouchi-companies"
	DataSetFormatSetouchiPorts     DataSetFormat = "setouchi-ports"
	DataSetFormatSetouchiFares     DataSetFormat = "setouchi-fares"

	DataSetFormatIslandBicycleRentals DataSetFormat = "island-bicycle-rentals"
	DataSetFormatIslandBusTimetable   DataSetFormat = "island-bus-timetable"
	DataSetFormatIslandOtherTransport DataSetFormat = "island-other-transport"
	DataSetFormatIslandSummary        DataSetFormat = "island-summary"
)

type Provider struct {
	Name    string
	Website string
}

var setouchiProvider = Provider{
	Name: "Setouchi ferry operators",
}

// GetDataSets lists the datasets making up a timetable in load order. Optional
// datasets with no configured file are left out.
func GetDataSets(cfg config.DataConfig) []DataSet {
	candidates := []DataSet{
		{
			Identifier: "timetable",
			Format:     DataSetFormatSetouchiTimetable,
			Source:     cfg.Path(cfg.Timetable),
			Required:   true,
		},
		{
			Identifier: "companies",
			Format:     DataSetFormatSetouchiCompanies,
			Source:     cfg.Path(cfg.Companies),
		},
		{
			Identifier: "ports",
			Format:     DataSetFormatSetouchiPorts,
			Source:     cfg.Path(cfg.Ports),
		},
		{
			Identifier: "fares",
			Format:     DataSetFormatSetouchiFares,
			Source:     cfg.Path(cfg.Fares),
		},
	}

	datasets := []DataSet{}
	for _, dataset := range candidates {
		if dataset.Source == "" && !dataset.Required {
			continue
		}

		dataset.Provider = setouchiProvider
		datasets = append(datasets, dataset)
	}

	return datasets
}

// GetIslandDataSets lists the transport files of one island. Every one of them
// is optional.
func GetIslandDataSets(cfg config.DataConfig, island config.IslandDataConfig) []DataSet {
	directory := cfg.IslandPath(island.Folder)

	files := []struct {
		name   string
		format DataSetFormat
	}{
		{"bicycle_rental.csv", DataSetFormatIslandBicycleRentals},
		{"bus_timetable.csv", DataSetFormatIslandBusTimetable},
		{"other_transport.csv", DataSetFormatIslandOtherTransport},
		{"island_transport_summary.md", DataSetFormatIslandSummary},
	}

	datasets := make([]DataSet, 0, len(files))
	for _, file := range files {
		datasets = append(datasets, DataSet{
			Identifier: island.Folder + "/" + file.name,
			Format:     file.format,
			Provider:   setouchiProvider,
			Source:     filepath.Join(directory, file.name),
			Island:     island.Folder,
		})
	}

	return datasets
}
