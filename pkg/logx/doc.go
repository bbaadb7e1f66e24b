// Package logx configures hwbot's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured (the old "main.log" habit, off by default)
//   - Log level swappable at runtime via Service.Apply()
package logx
