// Package timeouts defines the durations shared by the calculator server and
// its client.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the calculator server, health
// check included.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single Calculate call issued by the client command.
const GRPCRequest = 2 * time.Second

// ReadHeader limits how long the metrics HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown before forcing a stop.
const Shutdown = 5 * time.Second
