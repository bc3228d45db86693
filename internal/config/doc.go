// Package config loads litkit project configuration.
//
// Configuration lives in litkit.json or litkit.yaml at the project root.
// JSON is tried first. Both formats share the same schema:
//
//	name: gallery
//	serve:
//	  host: localhost
//	  port: 3000
//	render:
//	  output: dist
//	  title: litkit gallery
//	  pretty: true
//	dialog:
//	  title: Details
//	  width: 480px
//	popup:
//	  gap: 10
//	  margin: 10
//	autosize:
//	  minHeight: 40
//	  maxHeight: 200
//	log:
//	  level: info
//	  format: text
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Preview:", cfg.URL())
package config
