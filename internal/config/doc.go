// Package config provides configuration loading, merging, and validation
// facilities for the client and the fake API server.
//
// Configuration is assembled from multiple sources. For each field the first
// source that provides a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. .env file
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetFakeAPIConfig] for the fake hospital API.
package config
