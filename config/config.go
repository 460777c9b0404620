package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Session   SessionConfigs
	Redis     RedisConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string

	DefaultLimit int
	MaxLimit     int

	AllowCORS []string
}

type SessionConfigs struct {
	Secret string
	Name   string
}

type AuthConfigs struct {
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Secret     string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr string
}
