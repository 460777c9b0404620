package main

import (
	"github.com/urfave/cli/v2"
	"github.com/wishwall/backend/migration"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	return migration.AutoMigrate(s.ctx)
}
