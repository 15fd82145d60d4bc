package config

import (
	"os"
	"strings"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=bank_ledger_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultHTTPPort = "3000"
const defaultAMQPExchange = "ledger.transfers"
const defaultAllowedOrigin = "*"

type Config struct {
	DatabaseDSN   string
	MigrationsDir string
	HTTPPort      string
	AMQPURL       string
	AMQPExchange  string
	AllowedOrigin string
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultHTTPPort
	}

	amqpExchange := strings.TrimSpace(os.Getenv("AMQP_EXCHANGE"))
	if amqpExchange == "" {
		amqpExchange = defaultAMQPExchange
	}

	allowedOrigin := strings.TrimSpace(os.Getenv("ACCESS_CONTROL_ALLOW_ORIGIN"))
	if allowedOrigin == "" {
		allowedOrigin = defaultAllowedOrigin
	}

	return Config{
		DatabaseDSN:   normalizeConnectionString(conn),
		MigrationsDir: "migrations",
		HTTPPort:      port,
		AMQPURL:       strings.TrimSpace(os.Getenv("AMQP_URL")),
		AMQPExchange:  amqpExchange,
		AllowedOrigin: allowedOrigin,
	}, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
