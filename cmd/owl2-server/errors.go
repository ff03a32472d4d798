package main

import "fmt"

func errNotFound(id string) error {
	return fmt.Errorf("no ontology loaded with id %q", id)
}

func errUnknownProfile(name string) error {
	return fmt.Errorf("unknown profile %q", name)
}
