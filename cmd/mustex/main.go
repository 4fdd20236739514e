package main

import (
	"oss.mustex.org/mustex/lib/xmain"
	"oss.mustex.org/mustex/mxcli"
)

func main() {
	xmain.Main(mxcli.Run)
}
