// Env package is meant to be used for loading config files
//
// Usage:
//
//	type Cfg struct {}
//	func (c *Cfg) Validate() error { return nil }
//
//	cfg := &Cfg{}
//	load := env.MustFn(env.FromYAMLConfigs[*Cfg]("frameinfo"))
//	if err := load(cfg); err != nil {
//		panic(err)
//	}
package env

// Configurable is implemented by config structs (as pointers).
type Configurable interface {
	Validate() error
}
