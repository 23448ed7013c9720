package common

// Version is the current pl0dash version as a string.
const Version string = "0.1.0"

// ConfigFileName is the name of the optional configuration file.
const ConfigFileName string = "pl0dash.toml"

// SrcFileExt is the default file extension for a PL/0-dash source file.
const SrcFileExt string = ".pl0"

// OutFileExt is the default file extension for emitted syntax trees.
const OutFileExt string = ".xml"

// TokensSuffix is appended to the file stem of emitted token listings: eg.
// `Main.pl0` produces `MainT.xml`.
const TokensSuffix string = "T"
