package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the capdemo version and build time.",
		Usage: "capdemo version",
		Run: func([]string) error {
			printVersion()
			return nil
		},
	})
}
