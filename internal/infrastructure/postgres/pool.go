package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suminitec/suministros-api/pkg/config"
)

// Dimensionado para un único binario API con consultas cortas.
const (
	poolMaxConns        = 10
	poolMinConns        = 1
	poolConnLifetime    = 30 * time.Minute
	poolConnIdleTime    = 5 * time.Minute
	poolHealthCheckTick = 30 * time.Second
)

// NewPool abre el pool de conexiones a PostgreSQL. DATABASE_URL tiene prioridad
// sobre los campos sueltos de DBConfig. El host se resuelve a IPv4 siempre que
// exista un registro A: en contenedores sin pila IPv6 un AAAA deja el dial colgado.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := cfg.ConnectionString()
	if cfg.DatabaseURL != "" {
		dsn = conHostIPv4(cfg.DatabaseURL)
	} else if ipv4, err := resolverIPv4(cfg.Host); err == nil {
		directo := cfg
		directo.Host = ipv4
		dsn = directo.DSN()
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolCfg.ConnConfig.DialFunc = marcarIPv4
	poolCfg.MaxConns = poolMaxConns
	poolCfg.MinConns = poolMinConns
	poolCfg.MaxConnLifetime = poolConnLifetime
	poolCfg.MaxConnIdleTime = poolConnIdleTime
	poolCfg.HealthCheckPeriod = poolHealthCheckTick

	// NUMERIC <-> shopspring/decimal en cada conexión nueva del pool.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
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
	return pool, nil
}

// marcarIPv4 intenta el dial sobre tcp4; si el host no tiene registro A cae al
// dial que pgx habría hecho de todos modos.
func marcarIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := resolverIPv4(host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// resolverIPv4 devuelve la primera dirección IPv4 de un host. Si el resolver
// local solo conoce AAAA, reintenta contra un DNS público.
func resolverIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("%s es IPv6", host)
	}

	if ips, err := net.LookupIP(host); err == nil {
		if ipv4 := primeraIPv4(ips); ipv4 != "" {
			return ipv4, nil
		}
	}

	publico := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	ips, err := publico.LookupIP(context.Background(), "ip4", host)
	if err != nil {
		return "", err
	}
	if ipv4 := primeraIPv4(ips); ipv4 != "" {
		return ipv4, nil
	}
	return "", fmt.Errorf("%s no tiene registro A", host)
}

func primeraIPv4(ips []net.IP) string {
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String()
		}
	}
	return ""
}

// conHostIPv4 reescribe el hostname de un DATABASE_URL por su IPv4 cuando se
// puede resolver; si no, la URL queda como estaba.
func conHostIPv4(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := resolverIPv4(u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
