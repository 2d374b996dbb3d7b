// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the blog
// application.
//
// Each command maps to one call of [adapter.ServerAdapter]; results are
// printed to the configured writer as indented JSON so that they can be
// piped into other tools.
package client
