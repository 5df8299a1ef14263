package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "jungle-engine/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type EngineConfig struct {
	HashMB     int `json:"hash_mb"`
	MovetimeMs int `json:"movetime_ms"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

type ConfigColors struct {
	LandColor   int `json:"land"`
	WaterColor  int `json:"water"`
	TrapColor   int `json:"trap"`
	DenColor    int `json:"den"`
	LightColor  int `json:"light"`
	DarkColor   int `json:"dark"`
	CursorColor int `json:"cursor"`
}

type ConfigSymbols struct {
	Land  rune `json:"land"`
	Water rune `json:"water"`
	Trap  rune `json:"trap"`
	Den   rune `json:"den"`
}

type Theme struct {
	Colors  ConfigColors  `json:"colors"`
	Symbols ConfigSymbols `json:"symbols"`
}

type Config struct {
	Engine EngineConfig `json:"engine"`
	Server ServerConfig `json:"server"`
	Theme  Theme        `json:"theme"`
}

var DefaultConfig = Config{
	Engine: EngineConfig{
		HashMB:     256,
		MovetimeMs: 1000,
	},
	Server: ServerConfig{
		Addr: ":8080",
	},
	Theme: Theme{
		Colors: ConfigColors{
			LandColor:   0x3a5f0b,
			WaterColor:  0x1e6091,
			TrapColor:   0x8b0000,
			DenColor:    0xb8860b,
			LightColor:  0xffffff,
			DarkColor:   0x222222,
			CursorColor: 0xffff00,
		},
		Symbols: ConfigSymbols{
			Land:  '.',
			Water: '~',
			Trap:  '^',
			Den:   '*',
		},
	},
}

// InitConfig loads the config file through the XDG lookup, falling back to
// the defaults when no file exists.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Engine.HashMB < 1 {
		return &InvalidConfig{"engine.hash_mb must be at least 1"}
	}
	if c.Engine.MovetimeMs < 1 {
		return &InvalidConfig{"engine.movetime_ms must be at least 1"}
	}
	for _, r := range []rune{c.Theme.Symbols.Land, c.Theme.Symbols.Water, c.Theme.Symbols.Trap, c.Theme.Symbols.Den} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
