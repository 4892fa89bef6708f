package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chazu/trackgen/pkg/track"
)

// partCatalog maps CLI part names to requests. Length and Solid are filled
// in from flags afterward.
var partCatalog = map[string]track.PartRequest{
	"wood-track":         {Standard: track.Wood, Kind: track.Track},
	"wood-plug":          {Standard: track.Wood, Kind: track.Plug},
	"wood-cutout":        {Standard: track.Wood, Kind: track.Cutout},
	"trackmaster-plug":   {Standard: track.Trackmaster, Kind: track.Plug},
	"trackmaster-cutout": {Standard: track.Trackmaster, Kind: track.Cutout},
}

// partNames lists the valid part names for usage messages.
func partNames() string {
	names := make([]string, 0, len(partCatalog))
	for n := range partCatalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// parsePart resolves a CLI part name plus flags into a request.
func parsePart(name string, length float64, solid bool) (track.PartRequest, error) {
	req, ok := partCatalog[name]
	if !ok {
		return track.PartRequest{}, fmt.Errorf("unknown part %q (valid: %s)", name, partNames())
	}
	req.Length = length
	req.Solid = solid
	return req, nil
}
