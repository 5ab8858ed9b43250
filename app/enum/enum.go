// Package enum defines typed enumerations used across the application.
// Exported types and values are generated by github.com/go-pkgz/enum from the declarations below.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type preference -lower
type preference int

const (
	preferenceSystem preference = iota // enum:alias=
	preferenceLight
	preferenceDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type source -lower
type source int

const (
	sourcePersisted source = iota
	sourceSystem
	sourceExplicit
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres,postgresql
)

//go:generate go run github.com/go-pkgz/enum@latest -type persist -lower
type persist int

const (
	persistCookie persist = iota
	persistDB             // enum:alias=database
)
