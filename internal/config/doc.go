// Package config loads and validates the imageseal configuration file.
package config
