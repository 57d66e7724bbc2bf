// Package domain contains the core model for mallctl: a mall made of floors,
// stores, employees and mall-level guards, plus the result types produced by
// the query and policy engines.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
package domain
