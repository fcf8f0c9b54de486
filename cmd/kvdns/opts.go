package main

import (
	"time"
)

var opts struct {
	Cluster struct {
		Endpoint          string        `long:"endpoint" description:"address of the bootstrap node" env:"ENDPOINT" default:"127.0.0.1:2379"`
		AddrSource        string        `long:"addr-source" description:"member urls used for failover" env:"ADDR_SOURCE" default:"peer" choice:"peer" choice:"client"`
		MaxAttempts       int           `long:"max-attempts" description:"attempts per operation" env:"MAX_ATTEMPTS" default:"5"`
		RetryDelay        time.Duration `long:"retry-delay" description:"delay between attempts" env:"RETRY_DELAY" default:"2s"`
		DialTimeout       time.Duration `long:"dial-timeout" description:"node connection timeout" env:"DIAL_TIMEOUT" default:"5s"`
		DiscoveryAttempts int           `long:"discovery-attempts" description:"bootstrap connection attempts" env:"DISCOVERY_ATTEMPTS" default:"1"`
		Seed              int64         `long:"seed" description:"seed for failover node selection (random if zero)" env:"SEED"`
	} `group:"cluster"`

	Records struct {
		Prefix string `long:"prefix" description:"key prefix for device records" env:"PREFIX" default:"/kvdns/devices/"`
	} `group:"records" namespace:"records" env-namespace:"RECORDS"`

	Verbose bool `long:"verbose" description:"verbose mode" env:"VERBOSE"`

	Serve    serveCommand    `command:"serve" description:"serve the records REST API"`
	Simulate simulateCommand `command:"simulate" description:"run a randomized device workload"`
	Put      putCommand      `command:"put" description:"publish a device record"`
	Get      getCommand      `command:"get" description:"look up a device record"`
	Delete   deleteCommand   `command:"delete" description:"remove a device record"`
	Nodes    nodesCommand    `command:"nodes" description:"list the discovered cluster nodes"`
}
