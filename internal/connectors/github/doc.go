// Package github implements the repository metadata fetcher against the
// GitHub REST API using go-github. It handles authentication, rate
// limiting and normalisation of API responses into domain records; the
// core never sees GitHub types.
package github
