package config

import "time"

// Base application details
const AppName = "linecore"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "linecore.log"

// Editor behaviour
const DefaultContinueOnError = false
const DefaultPrintOnExit = false

// Autosave plugin
const DefaultAutosaveInterval = 2 * time.Second
