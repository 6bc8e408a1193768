// Package manifest extracts version strings from heterogeneous project
// files: Python-style assignment statements (setup.py), TOML tables
// (pyproject.toml), JSON and YAML manifests, and raw version files. It also
// writes versions back into those files, preserving surrounding formatting
// where the format allows it.
package manifest
