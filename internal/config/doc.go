// Package config provides configuration parsing for ariaid.
//
// Configuration lives in ariaid.json or ariaid.yaml in the project root.
// Both formats share one schema:
//
//	{
//	  "ids": {
//	    "prefix": "ds",
//	    "separator": "-",
//	    "scope": "global",
//	    "omitComponentName": false,
//	    "disableCache": false
//	  },
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "metricsPath": "/metrics"
//	  },
//	  "audit": {
//	    "failOn": ["nondeterministic", "duplicate", "dangling-reference"]
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	alloc := ids.New(ids.WithConfig(cfg.IDConfig()))
package config
