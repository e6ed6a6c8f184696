package snake

// Level is one campaign arena: a wall layout drawn with '#', the food
// count needed to clear it, and the base movement interval in ticks.
type Level struct {
	Name       string
	Layout     []string
	TargetFood int
}

// Levels defines the campaign arenas in play order. Layouts must be
// rectangular enough to fit the smallest supported terminal.
var Levels = []Level{
	{
		Name:       "Open Field",
		TargetFood: 5,
		Layout: []string{
			"############################",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:       "The Pillars",
		TargetFood: 7,
		Layout: []string{
			"############################",
			"#                          #",
			"#    ##       ##       ##  #",
			"#    ##       ##       ##  #",
			"#                          #",
			"#                          #",
			"#                          #",
			"#  ##       ##       ##    #",
			"#  ##       ##       ##    #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:       "Crossroads",
		TargetFood: 8,
		Layout: []string{
			"############################",
			"#                          #",
			"#                          #",
			"#            ##            #",
			"#            ##            #",
			"#   ####################   #",
			"#            ##            #",
			"#            ##            #",
			"#                          #",
			"#                          #",
			"#                          #",
			"############################",
		},
	},
	{
		Name:       "The Spiral",
		TargetFood: 10,
		Layout: []string{
			"############################",
			"#                          #",
			"#  ######################  #",
			"#                       #  #",
			"#  ##################   #  #",
			"#  #                #   #  #",
			"#  #   ####         #   #  #",
			"#  #                #   #  #",
			"#  #################    #  #",
			"#                       #  #",
			"#  ######################  #",
			"############################",
		},
	},
	{
		Name:       "The Gauntlet",
		TargetFood: 12,
		Layout: []string{
			"############################",
			"#     #        #           #",
			"#     #   ##   #    ##     #",
			"#     #   ##        ##     #",
			"#         ##   #           #",
			"#  ####        #   ####    #",
			"#              #           #",
			"#   ##    #        ##      #",
			"#   ##    #   ##   ##      #",
			"#         #   ##           #",
			"#         #                #",
			"############################",
		},
	},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based), or nil if the
// index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels for menu display.
func LevelNames() []string {
	names := make([]string, LevelCount())
	for i, level := range Levels {
		names[i] = level.Name
	}
	return names
}
