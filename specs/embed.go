package specs

import _ "embed"

//go:embed solar.yaml
var defaultSystem []byte
