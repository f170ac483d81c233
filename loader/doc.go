// Package loader reads reaction networks, species sets and cofactor
// candidate lists from files.
//
// Formats are chosen from the file extension after stripping an optional
// ".gz" (gzip is decompressed transparently):
//
//	.xml .sbml     SBML (model/listOfReactions, model/listOfSpecies)
//	.yaml .yml     YAML  {reactions: [{id, reactants, products, reversible}]}
//	.toml          TOML  [[reactions]] tables with the same fields
//	.rxn .txt      reaction text, one "R_1: A + B -> C" per line ("<=>"
//	               marks a reversible reaction); for species, one id per
//	               line with an optional tab-separated label
//
// Unknown extensions are read as SBML. WithFormat overrides detection.
//
// Cofactor candidate lists are plain text, one id per line, or "id<TAB>weight"
// with WithWeighted. Ids are SBML-encoded (EncodeID) and suffixed
// (WithSuffix) so they match the ids of an SBML network.
//
// Errors
//
// Every failure is a *Error carrying the path and, when known, the line. It
// unwraps to ErrResourceNotFound when the file is missing and to
// ErrMalformedInput when its content cannot be used.
package loader
