package loader

// LoadFileContext exposes the context-aware file reader to black-box tests.
var LoadFileContext = loadFile
