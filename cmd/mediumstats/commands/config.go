package commands

import (
	"fmt"
	"os"

	"mediumstats/lib/configutil"
	"mediumstats/lib/scrapers/medium"
)

// Config holds session cookies and the account/publication to scrape.
// Values come from mediumstats.json5 (with .local overrides), fields
// left empty there fall back to MEDIUM_* environment variables, which a
// .env file may populate.
type Config struct {
	Sid         string `json:"sid"`
	Uid         string `json:"uid"`
	Username    string `json:"username"`
	Publication string `json:"publication"`
}

func loadConfig() Config {
	configutil.LoadDotenv()

	cfg, err := configutil.ReadConfig[Config]("mediumstats.json5")
	if err != nil && !os.IsNotExist(err) {
		fatal("failed to read mediumstats.json5", err)
	}

	cfg.Sid = configutil.Env("MEDIUM_SID", cfg.Sid)
	cfg.Uid = configutil.Env("MEDIUM_UID", cfg.Uid)
	cfg.Username = configutil.Env("MEDIUM_USERNAME", cfg.Username)
	cfg.Publication = configutil.Env("MEDIUM_PUBLICATION_SLUG", cfg.Publication)
	return cfg
}

func (c Config) credentials() medium.Credentials {
	if c.Sid == "" || c.Uid == "" {
		fatal(
			"missing session cookies",
			fmt.Errorf("set sid/uid in mediumstats.json5 or MEDIUM_SID/MEDIUM_UID in the environment"),
		)
	}
	return medium.Credentials{Sid: c.Sid, Uid: c.Uid}
}
