package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ChangeFunc receives the re-decoded configuration after the config file changes.
// On a decode or validation failure cfg is nil and err explains why; the previous
// configuration should stay in effect.
type ChangeFunc func(event fsnotify.Event, cfg *Config, err error)

// Watch starts watching the file v was loaded from and calls fn on every change.
// fn runs on viper's watcher goroutine, so callers that own single-threaded state
// must hand the result over to their own loop.
func Watch(v *viper.Viper, fn ChangeFunc) {
	v.OnConfigChange(changeHandler(v, fn))
	v.WatchConfig()
}

func changeHandler(v *viper.Viper, fn ChangeFunc) func(fsnotify.Event) {
	return func(event fsnotify.Event) {
		cfg, err := Decode(v)
		fn(event, cfg, err)
	}
}
