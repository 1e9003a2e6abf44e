package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

const (
	defaultMaxConns     = 25
	defaultMinConns     = 2
	healthCheckPeriod   = time.Minute
	publicDNSResolver   = "8.8.8.8:53"
	defaultPostgresPort = "5432"
)

var errNoIPv4 = errors.New("sin dirección IPv4")

// NewPool abre el pool, registra el codec NUMERIC -> decimal.Decimal en cada conexión y hace ping.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}
	poolCfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	log.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Str("database", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Int32("min_conns", poolCfg.MinConns).
		Bool("ipv4", cfg.ForceIPv4).
		Msg("pool PostgreSQL listo")
	return pool, nil
}

// poolConfig traduce DBConfig a pgxpool.Config sin abrir conexiones.
func poolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	dsn := cfg.ConnectionString()
	if cfg.ForceIPv4 {
		dsn = dsnWithIPv4(cfg)
	}
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if cfg.ForceIPv4 {
		poolCfg.ConnConfig.DialFunc = dialIPv4
	}
	applyPoolLimits(poolCfg, cfg)
	return poolCfg, nil
}

// applyPoolLimits aplica los límites configurados; MinConns nunca supera MaxConns.
func applyPoolLimits(poolCfg *pgxpool.Config, cfg config.DBConfig) {
	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	poolCfg.MinConns = defaultMinConns
	if cfg.MinConns >= 0 {
		poolCfg.MinConns = int32(cfg.MinConns)
	}
	if poolCfg.MinConns > poolCfg.MaxConns {
		poolCfg.MinConns = poolCfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	poolCfg.HealthCheckPeriod = healthCheckPeriod
}

// dsnWithIPv4 sustituye el host por su IPv4 cuando se puede resolver; si no, devuelve el DSN tal cual.
func dsnWithIPv4(cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		return databaseURLWithIPv4(cfg.DatabaseURL)
	}
	if ipv4, err := resolveIPv4(cfg.Host); err == nil {
		cfg.Host = ipv4
	}
	return cfg.DSN()
}

func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := resolveIPv4(host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// resolveIPv4 prueba el resolver del sistema y después un DNS público:
// dentro de algunos contenedores el DNS local solo devuelve registros AAAA.
func resolveIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", errNoIPv4
	}
	if ip, err := lookupIPv4(net.DefaultResolver, host); err == nil {
		return ip, nil
	}
	public := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", publicDNSResolver)
		},
	}
	return lookupIPv4(public, host)
}

func lookupIPv4(r *net.Resolver, host string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ips, err := r.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", errNoIPv4
}

func databaseURLWithIPv4(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = defaultPostgresPort
	}
	ipv4, err := resolveIPv4(u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
