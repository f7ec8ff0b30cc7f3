// Package formula provides the high-level interface for counting the atoms
// of chemical formulas.
//
// Package: formula
// Title: Formula Engine
// Description: Wraps the formula parser with logging, timing, request
//              correlation and concurrent batch parsing. The parser itself
//              lives in the parser sub-package, the result types in model.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation
//
// Usage:
//
//	engine, err := formula.NewEngine(formula.Options{Logger: logger})
//	if err != nil {
//		return err
//	}
//
//	result, err := engine.Parse(ctx, "K4[ON(SO3)2]2")
//	if err != nil {
//		var pe *parser.ParseError
//		if errors.As(err, &pe) {
//			fmt.Printf("error at offset %d\n", pe.Offset)
//		}
//		return err
//	}
//	fmt.Println(result.Molecule) // [("K", 4), ("O", 14), ("N", 2), ("S", 4)]
//
//	for _, r := range engine.ParseAll(ctx, []string{"H2O", "Mg(OH)2"}) {
//		fmt.Println(r.Input, r.Err)
//	}
package formula
