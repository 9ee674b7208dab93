// Package config loads facility layouts and triage scenarios from YAML or
// TOML files through an afero.Fs.
//
// The format is chosen by file extension: .yaml and .yml use yaml.v3,
// .toml uses BurntSushi/toml. Unknown keys are rejected in both formats.
// Validation reports every problem at once as a *multierror.Error whose
// entries wrap ErrInvalidLayout or ErrInvalidScenario.
//
// Example layout (YAML):
//
//	name: north-wing
//	locations:
//	  - {id: ER, x: 0, y: 0, floor: 0, kind: emergency}
//	  - {id: ICU1, x: 40, y: 10, floor: 1, kind: icu}
//	corridors:
//	  - {from: ER, to: ICU1, weight: 4.5}
package config
