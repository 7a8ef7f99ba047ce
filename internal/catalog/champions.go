package catalog

var champions = []Character{
	{ID: "aatrox", Name: "Aatrox", Roles: []Role{RoleTop}},
	{ID: "ahri", Name: "Ahri", Roles: []Role{RoleMid}},
	{ID: "akali", Name: "Akali", Roles: []Role{RoleMid, RoleTop}},
	{ID: "akshan", Name: "Akshan", Roles: []Role{RoleMid, RoleTop}},
	{ID: "alistar", Name: "Alistar", Roles: []Role{RoleSupport}},
	{ID: "amumu", Name: "Amumu", Roles: []Role{RoleJungle, RoleSupport}},
	{ID: "anivia", Name: "Anivia", Roles: []Role{RoleMid}},
	{ID: "annie", Name: "Annie", Roles: []Role{RoleMid, RoleSupport}},
	{ID: "aphelios", Name: "Aphelios", Roles: []Role{RoleBottom}},
	{ID: "ashe", Name: "Ashe", Roles: []Role{RoleBottom, RoleSupport}},
	{ID: "aurelionsol", Name: "Aurelion Sol", Roles: []Role{RoleMid}},
	{ID: "azir", Name: "Azir", Roles: []Role{RoleMid}},
	{ID: "bard", Name: "Bard", Roles: []Role{RoleSupport}},
	{ID: "belveth", Name: "Bel'Veth", Roles: []Role{RoleJungle}},
	{ID: "blitz", Name: "Blitzcrank", Roles: []Role{RoleSupport}},
	{ID: "brand", Name: "Brand", Roles: []Role{RoleSupport, RoleJungle, RoleMid}},
	{ID: "braum", Name: "Braum", Roles: []Role{RoleSupport}},
	{ID: "briar", Name: "Briar", Roles: []Role{RoleJungle}},
	{ID: "caitlyn", Name: "Caitlyn", Roles: []Role{RoleBottom}},
	{ID: "camille", Name: "Camille", Roles: []Role{RoleTop, RoleSupport}},
	{ID: "cassiopeia", Name: "Cassiopeia", Roles: []Role{RoleMid}},
	{ID: "chogath", Name: "Cho'Gath", Roles: []Role{RoleTop, RoleMid}},
	{ID: "corki", Name: "Corki", Roles: []Role{RoleMid, RoleBottom}},
	{ID: "darius", Name: "Darius", Roles: []Role{RoleTop}},
	{ID: "diana", Name: "Diana", Roles: []Role{RoleJungle, RoleMid}},
	{ID: "drmundo", Name: "Dr. Mundo", Roles: []Role{RoleTop, RoleJungle}},
	{ID: "draven", Name: "Draven", Roles: []Role{RoleBottom}},
	{ID: "ekko", Name: "Ekko", Roles: []Role{RoleJungle, RoleMid}},
	{ID: "elise", Name: "Elise", Roles: []Role{RoleJungle}},
	{ID: "evelynn", Name: "Evelynn", Roles: []Role{RoleJungle}},
	{ID: "ezreal", Name: "Ezreal", Roles: []Role{RoleBottom}},
	{ID: "fiddlesticks", Name: "Fiddlesticks", Roles: []Role{RoleJungle, RoleSupport}},
	{ID: "fiora", Name: "Fiora", Roles: []Role{RoleTop}},
	{ID: "fizz", Name: "Fizz", Roles: []Role{RoleMid}},
	{ID: "galio", Name: "Galio", Roles: []Role{RoleMid, RoleSupport}},
	{ID: "gangplank", Name: "Gangplank", Roles: []Role{RoleTop}},
	{ID: "garen", Name: "Garen", Roles: []Role{RoleTop}},
	{ID: "gnar", Name: "Gnar", Roles: []Role{RoleTop}},
	{ID: "gragas", Name: "Gragas", Roles: []Role{RoleJungle, RoleTop, RoleSupport}},
	{ID: "graves", Name: "Graves", Roles: []Role{RoleJungle}},
	{ID: "gwen", Name: "Gwen", Roles: []Role{RoleTop, RoleJungle}},
	{ID: "hecarim", Name: "Hecarim", Roles: []Role{RoleJungle}},
	{ID: "heimerdinger", Name: "Heimerdinger", Roles: []Role{RoleSupport, RoleMid, RoleTop}},
	{ID: "hwei", Name: "Hwei", Roles: []Role{RoleMid, RoleSupport}},
	{ID: "illaoi", Name: "Illaoi", Roles: []Role{RoleTop}},
	{ID: "irelia", Name: "Irelia", Roles: []Role{RoleTop, RoleMid}},
	{ID: "ivern", Name: "Ivern", Roles: []Role{RoleJungle}},
	{ID: "janna", Name: "Janna", Roles: []Role{RoleSupport}},
	{ID: "jarvaniv", Name: "Jarvan IV", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "jax", Name: "Jax", Roles: []Role{RoleTop, RoleJungle}},
	{ID: "jayce", Name: "Jayce", Roles: []Role{RoleTop, RoleMid}},
	{ID: "jhin", Name: "Jhin", Roles: []Role{RoleBottom}},
	{ID: "jinx", Name: "Jinx", Roles: []Role{RoleBottom}},
	{ID: "ksante", Name: "K'Sante", Roles: []Role{RoleTop}},
	{ID: "kaisa", Name: "Kai'Sa", Roles: []Role{RoleBottom}},
	{ID: "kalista", Name: "Kalista", Roles: []Role{RoleBottom}},
	{ID: "karma", Name: "Karma", Roles: []Role{RoleSupport, RoleMid}},
	{ID: "karthus", Name: "Karthus", Roles: []Role{RoleJungle, RoleBottom}},
	{ID: "kassadin", Name: "Kassadin", Roles: []Role{RoleMid}},
	{ID: "katarina", Name: "Katarina", Roles: []Role{RoleMid}},
	{ID: "kayle", Name: "Kayle", Roles: []Role{RoleTop, RoleMid}},
	{ID: "kayn", Name: "Kayn", Roles: []Role{RoleJungle}},
	{ID: "kennen", Name: "Kennen", Roles: []Role{RoleTop, RoleMid}},
	{ID: "khazix", Name: "Kha'Zix", Roles: []Role{RoleJungle}},
	{ID: "kindred", Name: "Kindred", Roles: []Role{RoleJungle}},
	{ID: "kled", Name: "Kled", Roles: []Role{RoleTop}},
	{ID: "kogmaw", Name: "Kog'Maw", Roles: []Role{RoleBottom, RoleMid}},
	{ID: "leblanc", Name: "LeBlanc", Roles: []Role{RoleMid}},
	{ID: "leesin", Name: "Lee Sin", Roles: []Role{RoleJungle}},
	{ID: "leona", Name: "Leona", Roles: []Role{RoleSupport}},
	{ID: "lillia", Name: "Lillia", Roles: []Role{RoleJungle}},
	{ID: "lissandra", Name: "Lissandra", Roles: []Role{RoleMid}},
	{ID: "lucian", Name: "Lucian", Roles: []Role{RoleBottom, RoleMid}},
	{ID: "lulu", Name: "Lulu", Roles: []Role{RoleSupport}},
	{ID: "lux", Name: "Lux", Roles: []Role{RoleMid, RoleSupport}},
	{ID: "malphite", Name: "Malphite", Roles: []Role{RoleTop, RoleSupport, RoleMid}},
	{ID: "malzahar", Name: "Malzahar", Roles: []Role{RoleMid}},
	{ID: "maokai", Name: "Maokai", Roles: []Role{RoleSupport, RoleTop, RoleJungle}},
	{ID: "masteryi", Name: "Master Yi", Roles: []Role{RoleJungle}},
	{ID: "milio", Name: "Milio", Roles: []Role{RoleSupport}},
	{ID: "missfortune", Name: "Miss Fortune", Roles: []Role{RoleBottom}},
	{ID: "mordekaiser", Name: "Mordekaiser", Roles: []Role{RoleTop, RoleJungle}},
	{ID: "morgana", Name: "Morgana", Roles: []Role{RoleSupport, RoleJungle, RoleMid}},
	{ID: "naafiri", Name: "Naafiri", Roles: []Role{RoleMid, RoleTop, RoleJungle}},
	{ID: "nami", Name: "Nami", Roles: []Role{RoleSupport}},
	{ID: "nasus", Name: "Nasus", Roles: []Role{RoleTop}},
	{ID: "nautilus", Name: "Nautilus", Roles: []Role{RoleSupport}},
	{ID: "neeko", Name: "Neeko", Roles: []Role{RoleMid, RoleSupport}},
	{ID: "nidalee", Name: "Nidalee", Roles: []Role{RoleJungle}},
	{ID: "nilah", Name: "Nilah", Roles: []Role{RoleBottom}},
	{ID: "nocturne", Name: "Nocturne", Roles: []Role{RoleJungle}},
	{ID: "nunu", Name: "Nunu & Willump", Roles: []Role{RoleJungle}},
	{ID: "olaf", Name: "Olaf", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "orianna", Name: "Orianna", Roles: []Role{RoleMid}},
	{ID: "ornn", Name: "Ornn", Roles: []Role{RoleTop}},
	{ID: "pantheon", Name: "Pantheon", Roles: []Role{RoleSupport, RoleMid, RoleTop, RoleJungle}},
	{ID: "poppy", Name: "Poppy", Roles: []Role{RoleJungle, RoleTop, RoleSupport}},
	{ID: "pyke", Name: "Pyke", Roles: []Role{RoleSupport}},
	{ID: "qiyana", Name: "Qiyana", Roles: []Role{RoleJungle, RoleMid}},
	{ID: "quinn", Name: "Quinn", Roles: []Role{RoleTop}},
	{ID: "rakan", Name: "Rakan", Roles: []Role{RoleSupport}},
	{ID: "rammus", Name: "Rammus", Roles: []Role{RoleJungle}},
	{ID: "reksai", Name: "Rek'Sai", Roles: []Role{RoleJungle}},
	{ID: "rell", Name: "Rell", Roles: []Role{RoleSupport, RoleJungle}},
	{ID: "renata", Name: "Renata Glasc", Roles: []Role{RoleSupport}},
	{ID: "renekton", Name: "Renekton", Roles: []Role{RoleTop}},
	{ID: "rengar", Name: "Rengar", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "riven", Name: "Riven", Roles: []Role{RoleTop}},
	{ID: "rumble", Name: "Rumble", Roles: []Role{RoleTop, RoleMid}},
	{ID: "ryze", Name: "Ryze", Roles: []Role{RoleMid, RoleTop}},
	{ID: "samira", Name: "Samira", Roles: []Role{RoleBottom}},
	{ID: "sejuani", Name: "Sejuani", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "senna", Name: "Senna", Roles: []Role{RoleSupport, RoleBottom}},
	{ID: "seraphine", Name: "Seraphine", Roles: []Role{RoleSupport, RoleMid, RoleBottom}},
	{ID: "sett", Name: "Sett", Roles: []Role{RoleTop, RoleSupport}},
	{ID: "shaco", Name: "Shaco", Roles: []Role{RoleJungle, RoleSupport}},
	{ID: "shen", Name: "Shen", Roles: []Role{RoleTop, RoleSupport}},
	{ID: "shyvana", Name: "Shyvana", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "singed", Name: "Singed", Roles: []Role{RoleTop}},
	{ID: "sion", Name: "Sion", Roles: []Role{RoleTop}},
	{ID: "sivir", Name: "Sivir", Roles: []Role{RoleBottom}},
	{ID: "skarner", Name: "Skarner", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "smolder", Name: "Smolder", Roles: []Role{RoleBottom, RoleMid}},
	{ID: "sona", Name: "Sona", Roles: []Role{RoleSupport}},
	{ID: "soraka", Name: "Soraka", Roles: []Role{RoleSupport}},
	{ID: "swain", Name: "Swain", Roles: []Role{RoleSupport, RoleMid, RoleBottom}},
	{ID: "sylas", Name: "Sylas", Roles: []Role{RoleMid, RoleJungle, RoleTop}},
	{ID: "syndra", Name: "Syndra", Roles: []Role{RoleMid}},
	{ID: "tahmkench", Name: "Tahm Kench", Roles: []Role{RoleSupport, RoleTop}},
	{ID: "taliyah", Name: "Taliyah", Roles: []Role{RoleJungle, RoleMid}},
	{ID: "talon", Name: "Talon", Roles: []Role{RoleJungle, RoleMid}},
	{ID: "taric", Name: "Taric", Roles: []Role{RoleSupport}},
	{ID: "teemo", Name: "Teemo", Roles: []Role{RoleTop, RoleJungle, RoleSupport}},
	{ID: "thresh", Name: "Thresh", Roles: []Role{RoleSupport}},
	{ID: "tristana", Name: "Tristana", Roles: []Role{RoleBottom, RoleMid}},
	{ID: "trundle", Name: "Trundle", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "tryndamere", Name: "Tryndamere", Roles: []Role{RoleTop}},
	{ID: "twistedfate", Name: "Twisted Fate", Roles: []Role{RoleMid, RoleTop}},
	{ID: "twitch", Name: "Twitch", Roles: []Role{RoleBottom, RoleSupport, RoleJungle}},
	{ID: "udyr", Name: "Udyr", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "urgot", Name: "Urgot", Roles: []Role{RoleTop}},
	{ID: "varus", Name: "Varus", Roles: []Role{RoleBottom, RoleMid, RoleTop}},
	{ID: "vayne", Name: "Vayne", Roles: []Role{RoleBottom, RoleTop}},
	{ID: "veigar", Name: "Veigar", Roles: []Role{RoleMid, RoleSupport, RoleBottom}},
	{ID: "velkoz", Name: "Vel'Koz", Roles: []Role{RoleSupport, RoleMid}},
	{ID: "vex", Name: "Vex", Roles: []Role{RoleMid}},
	{ID: "vi", Name: "Vi", Roles: []Role{RoleJungle}},
	{ID: "viego", Name: "Viego", Roles: []Role{RoleJungle, RoleMid}},
	{ID: "viktor", Name: "Viktor", Roles: []Role{RoleMid, RoleTop}},
	{ID: "vladimir", Name: "Vladimir", Roles: []Role{RoleMid, RoleTop}},
	{ID: "volibear", Name: "Volibear", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "warwick", Name: "Warwick", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "wukong", Name: "Wukong", Roles: []Role{RoleJungle, RoleTop}},
	{ID: "xayah", Name: "Xayah", Roles: []Role{RoleBottom}},
	{ID: "xerath", Name: "Xerath", Roles: []Role{RoleSupport, RoleMid}},
	{ID: "xinzhao", Name: "Xin Zhao", Roles: []Role{RoleJungle}},
	{ID: "yasuo", Name: "Yasuo", Roles: []Role{RoleMid, RoleTop, RoleBottom}},
	{ID: "yone", Name: "Yone", Roles: []Role{RoleMid, RoleTop}},
	{ID: "yorick", Name: "Yorick", Roles: []Role{RoleTop, RoleJungle}},
	{ID: "yuumi", Name: "Yuumi", Roles: []Role{RoleSupport}},
	{ID: "zac", Name: "Zac", Roles: []Role{RoleJungle, RoleTop, RoleSupport}},
	{ID: "zed", Name: "Zed", Roles: []Role{RoleMid, RoleJungle}},
	{ID: "zeri", Name: "Zeri", Roles: []Role{RoleBottom, RoleMid}},
	{ID: "ziggs", Name: "Ziggs", Roles: []Role{RoleBottom, RoleMid}},
	{ID: "zilean", Name: "Zilean", Roles: []Role{RoleSupport, RoleMid}},
	{ID: "zoe", Name: "Zoe", Roles: []Role{RoleMid, RoleSupport}},
	{ID: "zyra", Name: "Zyra", Roles: []Role{RoleSupport, RoleJungle}},
}
