package main

import "github.com/burhanudinera2018/gellium-delinquency-analysis-v1/cmd"

func main() {
	cmd.Execute()
}
