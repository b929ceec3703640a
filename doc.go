// diggeo resolves domain names and queries a geolocation service for
// IP addresses, printing raw responses to standard output.
//
// It accepts IP addresses as arguments:
//
//	diggeo 8.8.8.8 1.1.1.1
//
// reads them from standard input if no arguments are given:
//
//	cat ips.txt | diggeo
//
// or resolves a domain first:
//
//	diggeo --dig example.com
//
// An API key is taken from /etc/diggeo.conf (api_key = ...) or from
// DIGGEO_API_KEY environment variable.
//
// The tool is organized into a few packages:
//
// Diglib
//
// diglib is the core: a Dispatcher which plans targets, runs lookups on
// a worker pool and emits results in input order.
//
// Providers and resolvers
//
// Implementations of geolocation providers (ipgeolocation.io) and DNS
// resolvers (system or a specific DNS server).
//
// Config
//
// Loading and validation of configuration from files, environment and
// in-memory sources.
//
// Exit code is 0 if every target was processed without an error, 1 on
// fatal errors like missing configuration, and 2 if any target failed.
package main
