package fixint

// Version is the release of the module, printed by the version verb.
var Version = "v0.1.0"
