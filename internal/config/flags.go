package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-bw-session session token generated by the Bitwarden CLI (bw login)
//	-bw-path path to the bw binary
//	-db-path path to the KeePass-style db (created when missing)
//	-db-password password for the db
//	-db-keyfile path to the key file for the db
//	-totp-db-path path to the separate TOTP db (enables the split policy)
//	-totp-db-password password for the TOTP db
//	-totp-db-keyfile path to the key file for the TOTP db
//	-sensitive-on-protected also treat source-hidden fields as sensitive
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var bwSession string
	var bwPath string
	var dbPath string
	var dbPassword string
	var dbKeyfile string
	var totpDBPath string
	var totpDBPassword string
	var totpDBKeyfile string
	var sensitiveOnProtected bool
	var jsonConfigPath string

	flag.StringVar(&bwSession, "bw-session", "", "Session generated from bitwarden-cli (bw login)")
	flag.StringVar(&bwPath, "bw-path", "", "Path for bw binary")
	flag.StringVar(&dbPath, "db-path", "", "Path to KeePass db. If db does not exist it will be created")
	flag.StringVar(&dbPassword, "db-password", "", "Password for KeePass db")
	flag.StringVar(&dbKeyfile, "db-keyfile", "", "Path to Key File for KeePass db")
	flag.StringVar(&totpDBPath, "totp-db-path", "", "Path to KeePass TOTP db. If db does not exist it will be created")
	flag.StringVar(&totpDBPassword, "totp-db-password", "", "Password for KeePass TOTP db")
	flag.StringVar(&totpDBKeyfile, "totp-db-keyfile", "", "Path to Key File for KeePass TOTP db")
	flag.BoolVar(&sensitiveOnProtected, "sensitive-on-protected", false, "Mark source-protected fields as sensitive")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Bitwarden: Bitwarden{
			Session: bwSession,
			Path:    bwPath,
		},
		Database: Database{
			Path:     dbPath,
			Password: dbPassword,
			Keyfile:  dbKeyfile,
		},
		TOTPDatabase: Database{
			Path:     totpDBPath,
			Password: totpDBPassword,
			Keyfile:  totpDBKeyfile,
		},
		Converter: Converter{
			SensitiveOnProtected: sensitiveOnProtected,
		},
		JSONFilePath: jsonConfigPath,
	}
}
