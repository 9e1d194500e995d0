// Package cli wires up the cobra command, its flags and the viper
// configuration for the cedict2json command line tool.
package cli
