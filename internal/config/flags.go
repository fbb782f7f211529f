package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a peer server address in format [host]:[port]
//	-d document store DSN
//	-c/-config json file path with configs
//	-loop-interval scheduler tick interval (e.g., "60s", "5m")
//	-status-timeout status probe timeout (e.g., "3s")
//	-request-timeout sync request timeout (e.g., "30s")
//	-full-html-path output path for downloaded full-html documents
//	-app-name application name sent in X-Requested-With
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var loopInterval time.Duration
	var statusTimeout time.Duration
	var requestTimeout time.Duration
	var fullHTMLPath string
	var appName string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Document store DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&loopInterval, "loop-interval", 0, "Scheduler tick interval (e.g., 60s, 5m)")
	flag.DurationVar(&statusTimeout, "status-timeout", 0, "Status probe timeout (e.g., 3s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Sync request timeout (e.g., 30s)")
	flag.StringVar(&fullHTMLPath, "full-html-path", "", "Output path for full-html downloads")
	flag.StringVar(&appName, "app-name", "", "Application name for X-Requested-With")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Name: appName,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			LoopInterval:   loopInterval,
			StatusTimeout:  statusTimeout,
			RequestTimeout: requestTimeout,
			FullHTMLPath:   fullHTMLPath,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
