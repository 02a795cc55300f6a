package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	DefaultWidth  int
	DefaultHeight int
	ScanMode      ScanMode
	BitOrder      BitOrder
	HexPerLine    int
	ScalePolicy   ScalePolicy
	Threshold     uint8
	InvertImport  bool
	StartMenu     bool
	Confirmations bool
}

func loadConfig() *Config {
	config := &Config{
		SaveDirectory: "",
		DefaultWidth:  defaultWidth,
		DefaultHeight: defaultHeight,
		ScanMode:      ScanVertical,
		BitOrder:      MSBFirst,
		HexPerLine:    hexWrapDefault,
		ScalePolicy:   ScaleFit,
		Threshold:     128,
		InvertImport:  false,
		StartMenu:     true,
		Confirmations: true,
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".dotpadrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "width", "default_width":
			if n, err := strconv.Atoi(value); err == nil && n >= minCanvasDim && n <= maxCanvasDim {
				config.DefaultWidth = n
			}
		case "height", "default_height":
			if n, err := strconv.Atoi(value); err == nil && n >= minCanvasDim && n <= maxCanvasDim {
				config.DefaultHeight = n
			}
		case "scanmode", "scan_mode":
			if strings.ToLower(value) == "horizontal" {
				config.ScanMode = ScanHorizontal
			} else {
				config.ScanMode = ScanVertical
			}
		case "bitorder", "bit_order":
			if strings.ToLower(value) == "lsb" {
				config.BitOrder = LSBFirst
			} else {
				config.BitOrder = MSBFirst
			}
		case "scalepolicy", "scale_policy", "scale":
			if p, err := ParseScalePolicy(strings.ToLower(value)); err == nil {
				config.ScalePolicy = p
			}
		case "threshold":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
				config.Threshold = uint8(n)
			}
		case "invertimport", "invert_import":
			config.InvertImport = strings.ToLower(value) == "true"
		case "hexperline", "hex_per_line":
			if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= 64 {
				config.HexPerLine = n
			}
		case "startmenu", "start_menu":
			config.StartMenu = strings.ToLower(value) == "true"
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
