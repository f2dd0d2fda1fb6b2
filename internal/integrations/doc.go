// Package integrations lists the AI assistant tools whose config roots receive
// a link to the shared skills directory, and maps each tool to the container
// directory it reads skills from.
package integrations
