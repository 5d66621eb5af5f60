package config

var Version string

func SetVersion(version string) {
	if version == "" {
		version = "dev"
	}
	Version = version
}
