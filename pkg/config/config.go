package config

import (
	"path/filepath"
	"time"

	"github.com/setoferry/setoferry/pkg/ctdf"
)

type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Cache  CacheConfig  `yaml:"cache"`

	PopularRoutes []ctdf.PopularRoute `yaml:"popular_routes" validate:"dive"`
}

type ServerConfig struct {
	Listen         string   `yaml:"listen" validate:"required"`
	APIPrefix      string   `yaml:"api_prefix" validate:"required,startswith=/"`
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,url"`
}

type DataConfig struct {
	Directory  string `yaml:"directory" validate:"required"`
	Timetable  string `yaml:"timetable" validate:"required"`
	Companies  string `yaml:"companies"`
	Ports      string `yaml:"ports"`
	Fares      string `yaml:"fares"`
	Transforms string `yaml:"transforms"`

	IslandsDirectory string             `yaml:"islands_directory"`
	Islands          []IslandDataConfig `yaml:"islands" validate:"dive"`
}

// IslandDataConfig names one folder of island transport files under
// IslandsDirectory. The folder name doubles as the island's English name.
type IslandDataConfig struct {
	Folder string `yaml:"folder" validate:"required"`
	Name   string `yaml:"name" validate:"required"`
	Notes  string `yaml:"notes"`
}

// Path resolves a data file name against Directory. Empty names stay empty.
func (d DataConfig) Path(file string) string {
	if file == "" {
		return ""
	}
	if filepath.IsAbs(file) {
		return file
	}

	return filepath.Join(d.Directory, file)
}

// IslandPath resolves an island folder against IslandsDirectory, itself
// resolved against Directory.
func (d DataConfig) IslandPath(folder string) string {
	return filepath.Join(d.Path(d.IslandsDirectory), folder)
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration" validate:"gte=0"`
}

func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Listen:    ":8000",
			APIPrefix: "/api/v1",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
			},
		},
		Data: DataConfig{
			Directory:  "data",
			Timetable:  "setouchi_ferry_timetable.csv",
			Companies:  "ferry_companies_info.csv",
			Ports:      "ports_info.csv",
			Fares:      "fare_summary.csv",
			Transforms: "data/transforms",

			IslandsDirectory: "islands",
			Islands: []IslandDataConfig{
				{Folder: "naoshima", Name: "直岛"},
				{Folder: "shodoshima", Name: "小豆岛"},
				{Folder: "teshima", Name: "丰岛"},
				{Folder: "megijima", Name: "女木岛", Notes: "禁止汽车乘入"},
				{Folder: "ogijima", Name: "男木岛", Notes: "只能步行，禁止自行车和汽车"},
			},
		},
		Cache: CacheConfig{
			Expiration: 90 * time.Minute,
		},
		PopularRoutes: []ctdf.PopularRoute{
			{Departure: "高松", Arrival: "直島", Description: "高松到直島 - 艺术之岛"},
			{Departure: "宇野", Arrival: "直島", Description: "宇野到直島 - 最便捷路线"},
			{Departure: "高松", Arrival: "小豆島", Description: "高松到小豆島 - 橄榄之岛"},
			{Departure: "宇野", Arrival: "豊島", Description: "宇野到豊島 - 美术馆之岛"},
			{Departure: "直島", Arrival: "豊島", Description: "直島到豊島 - 艺术跳岛"},
			{Departure: "豊島", Arrival: "犬島", Description: "豊島到犬島 - 精炼所美术馆"},
		},
	}
}
