package core

import "github.com/gerbilkit/distill/pkg/models"

// DefaultPersona is the fixed system turn prepended to every
// conversation entry.
const DefaultPersona = "You are an expert in Gerbil Scheme, a dialect of Scheme built on Gambit. " +
	"You provide accurate, idiomatic Gerbil code with correct imports, function " +
	"names, and arities. You know the standard library (:std/*), the actor system, " +
	"the FFI interface, the macro system (defrules, syntax-case), pattern matching, " +
	"the module system, and common gotchas. When writing code, always include " +
	"required import statements."

// DefaultCatalog returns the built-in description lookups. The maps are
// static domain data: which std modules are worth teaching, and what to
// call the tutorial and Gambit example directories.
func DefaultCatalog() models.Catalog {
	return models.Catalog{
		StdModules: map[string]string{
			"src/std/sugar.ss":        "syntactic sugar (try/catch, hash, chain, when-let)",
			"src/std/iter.ss":         "the iteration framework (for, for/collect, in-range)",
			"src/std/error.ss":        "error handling and custom error classes",
			"src/std/test.ss":         "the unit testing framework",
			"src/std/sort.ss":         "sorting algorithms",
			"src/std/event.ss":        "the event system",
			"src/std/coroutine.ss":    "coroutines",
			"src/std/amb.ss":          "nondeterministic computation (amb operator)",
			"src/std/generic.ss":      "generic function dispatch",
			"src/std/interface.ss":    "interface definitions",
			"src/std/actor.ss":        "the actor system",
			"src/std/misc/hash.ss":    "extended hash table operations",
			"src/std/misc/list.ss":    "extended list operations",
			"src/std/misc/string.ss":  "extended string operations",
			"src/std/misc/path.ss":    "filesystem path operations",
			"src/std/misc/channel.ss": "Go-style channels",
			"src/std/misc/threads.ss": "thread utilities",
			"src/std/misc/alist.ss":   "association list operations",
			"src/std/misc/bytes.ss":   "byte vector operations",
			"src/std/misc/process.ss": "process execution (run-process)",
			"src/std/text/json.ss":    "JSON parsing and generation",
		},
		TutorialDirs: map[string]string{
			"httpd":    "a simple HTTP server",
			"kvstore":  "a key-value store with RPC",
			"proxy":    "a TCP proxy",
			"lang":     "a custom language extension",
			"ensemble": "a distributed actor ensemble",
		},
		GambitExamples: map[string]string{
			"tcltk":      "Tcl/Tk GUI integration via Gambit FFI",
			"web-repl":   "web-based REPL server",
			"web-server": "HTTP web server",
			"ring":       "distributed ring topology",
			"pthread":    "POSIX thread integration",
			"pi":         "Pi computation",
			"misc":       "miscellaneous Gambit examples",
		},
	}
}
