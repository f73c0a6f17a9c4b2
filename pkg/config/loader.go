package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adhocore/jsonc"
	"github.com/goccy/go-yaml"
	"github.com/roemer/gominutes/pkg/common"
	"github.com/roemer/gominutes/pkg/presets"
)

// The name of the config file which is searched when no config is given.
const DefaultConfigName = "gominutes"

// The extensions that are probed, in order, when a config path has no extension.
var ConfigExtensions = []string{".json", ".jsonc", ".yaml", ".yml"}

// Loads the given configuration. Without a path, a default config in the current folder is used if it exists.
// The path can also be an url or a preset like "preset:netlify".
func Load(ctx context.Context, configPath string) (*GominutesConfig, error) {
	if configPath == "" {
		foundPath, err := SearchConfigFileFromPath(DefaultConfigName)
		if err != nil {
			return nil, err
		}
		if foundPath == "" {
			return &GominutesConfig{}, nil
		}
		configPath = foundPath
	}
	return loadConfig(ctx, "", configPath, []string{})
}

// Searches for a config file with one of the known extensions. Returns an empty string if nothing is found.
func SearchConfigFileFromPath(basePath string) (string, error) {
	for _, ext := range ConfigExtensions {
		candidate := basePath + ext
		exists, err := common.FileExists(candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate, nil
		}
	}
	return "", nil
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

var httpSchemeRegex = regexp.MustCompile(`^https?://.+`)

const presetPrefix = "preset:"

func loadConfig(ctx context.Context, parentLocation string, location string, chain []string) (*GominutesConfig, error) {
	isWeb := httpSchemeRegex.MatchString(location)
	isPreset := strings.HasPrefix(location, presetPrefix)
	if !isWeb && !isPreset {
		resolved, err := resolveLocalPath(parentLocation, location)
		if err != nil {
			return nil, err
		}
		location = resolved
	}
	for _, loaded := range chain {
		if loaded == location {
			return nil, fmt.Errorf("config '%s' extends itself", location)
		}
	}
	chain = append(chain, location)

	var newConfig *GominutesConfig
	var err error
	if isWeb {
		newConfig, err = loadConfigFromWeb(ctx, location)
	} else if isPreset {
		newConfig, err = loadConfigFromPreset(strings.TrimPrefix(location, presetPrefix))
	} else {
		newConfig, err = loadConfigFromFile(location)
	}
	if err != nil {
		return nil, err
	}

	// Create a new object for the merged config
	mergedConfig := &GominutesConfig{}
	// Process the "Extends" configs first
	for _, extendsLocation := range newConfig.Extends {
		extendsConfig, err := loadConfig(ctx, location, extendsLocation, chain)
		if err != nil {
			return nil, err
		}
		mergedConfig.MergeWith(extendsConfig)
	}
	// Merge the original config into the merged config
	mergedConfig.MergeWith(newConfig)
	return mergedConfig, nil
}

// Resolves the path of a local config. Relative paths of extended configs are relative to the extending config.
func resolveLocalPath(parentLocation string, location string) (string, error) {
	searchPaths := []string{}
	if filepath.IsAbs(location) || parentLocation == "" || httpSchemeRegex.MatchString(parentLocation) || strings.HasPrefix(parentLocation, presetPrefix) {
		searchPaths = append(searchPaths, location)
	} else {
		searchPaths = append(searchPaths, filepath.Join(filepath.Dir(parentLocation), location), location)
	}

	for _, searchPath := range searchPaths {
		if filepath.Ext(searchPath) != "" {
			if exists, err := common.FileExists(searchPath); err != nil {
				return "", err
			} else if exists {
				return filepath.Clean(searchPath), nil
			}
			continue
		}
		if foundPath, err := SearchConfigFileFromPath(searchPath); err != nil {
			return "", err
		} else if foundPath != "" {
			return filepath.Clean(foundPath), nil
		}
	}
	return "", fmt.Errorf("config file not found for '%s'", location)
}

func loadConfigFromFile(filePath string) (*GominutesConfig, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed reading config '%s': %w", filePath, err)
	}
	config, err := parseConfig(content, filepath.Ext(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed parsing config '%s': %w", filePath, err)
	}
	return config, nil
}

func loadConfigFromPreset(name string) (*GominutesConfig, error) {
	content, fileName, err := presets.Read(name)
	if err != nil {
		return nil, err
	}
	config, err := parseConfig(content, filepath.Ext(fileName))
	if err != nil {
		return nil, fmt.Errorf("failed parsing preset '%s': %w", name, err)
	}
	return config, nil
}

func loadConfigFromWeb(ctx context.Context, urlString string) (*GominutesConfig, error) {
	parsedUrl, err := url.Parse(urlString)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: 30 * time.Second}
	content, _, err := common.HttpUtil.GetWithBearer(ctx, client, urlString, "")
	if err != nil {
		return nil, fmt.Errorf("failed downloading config from '%s': %w", urlString, err)
	}
	config, err := parseConfig(content, path.Ext(parsedUrl.Path))
	if err != nil {
		return nil, fmt.Errorf("failed parsing config from '%s': %w", urlString, err)
	}
	return config, nil
}

func parseConfig(content []byte, ext string) (*GominutesConfig, error) {
	config := &GominutesConfig{}
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		// Comments and trailing commas are allowed in json configs
		stripped := jsonc.New().StripS(string(content))
		if err := json.Unmarshal([]byte(stripped), config); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, err
		}
	}
	return config, nil
}
