package projects

// BusName is the well-known name the daemon claims on the session bus. Every
// shipped search provider file refers to it.
const BusName = "net.mvarner.JetSearch"

// objectPathPrefix is the root all provider objects are exported below.
const objectPathPrefix = "/net/mvarner/JetSearch"

// Definition declares one search provider this service can expose.
type Definition struct {
	// Label is a human readable product name, for --providers output.
	Label string

	// DesktopID is the desktop file of the app that opens the projects.
	DesktopID string

	// RelativeObjPath is the object path suffix the provider is exported
	// at. It must be unique across definitions so the shell launches the
	// right product for each provider.
	RelativeObjPath string

	// Config locates the product's recent projects.
	Config ConfigLocation
}

// ObjectPath returns the full D-Bus object path for this definition.
func (d Definition) ObjectPath() string {
	return objectPathPrefix + "/" + d.RelativeObjPath
}

// Definitions lists the known products. For each entry a matching provider
// file must exist in providers/ with the same desktop ID and object path.
var Definitions = []Definition{
	{
		Label:           "Android Studio (toolbox)",
		DesktopID:       "jetbrains-studio.desktop",
		RelativeObjPath: "toolbox/studio",
		Config: ConfigLocation{
			VendorDir:        "Google",
			ConfigGlob:       "AndroidStudio*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "CLion (toolbox)",
		DesktopID:       "jetbrains-clion.desktop",
		RelativeObjPath: "toolbox/clion",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "CLion*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "GoLand (toolbox)",
		DesktopID:       "jetbrains-goland.desktop",
		RelativeObjPath: "toolbox/goland",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "GoLand*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "IDEA (toolbox)",
		DesktopID:       "jetbrains-idea.desktop",
		RelativeObjPath: "toolbox/idea",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "IntelliJIdea*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "IDEA Community Edition (toolbox)",
		DesktopID:       "jetbrains-idea-ce.desktop",
		RelativeObjPath: "toolbox/ideace",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "IdeaIC*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "PhpStorm (toolbox)",
		DesktopID:       "jetbrains-phpstorm.desktop",
		RelativeObjPath: "toolbox/phpstorm",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "PhpStorm*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "PyCharm (toolbox)",
		DesktopID:       "jetbrains-pycharm.desktop",
		RelativeObjPath: "toolbox/pycharm",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "PyCharm*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "Rider (toolbox)",
		DesktopID:       "jetbrains-rider.desktop",
		RelativeObjPath: "toolbox/rider",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "Rider*",
			ProjectsFilename: "recentSolutions.xml",
		},
	},
	{
		Label:           "RubyMine (toolbox)",
		DesktopID:       "jetbrains-rubymine.desktop",
		RelativeObjPath: "toolbox/rubymine",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "RubyMine*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
	{
		Label:           "WebStorm (toolbox)",
		DesktopID:       "jetbrains-webstorm.desktop",
		RelativeObjPath: "toolbox/webstorm",
		Config: ConfigLocation{
			VendorDir:        "JetBrains",
			ConfigGlob:       "WebStorm*",
			ProjectsFilename: "recentProjects.xml",
		},
	},
}
