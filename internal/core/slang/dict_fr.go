package slang

// French chat slang and abbreviations mapped to plain French, so the
// translation model sees literal phrasing instead of idioms
var dictFR = [][2]string{
	{"mdr", "mort de rire"},
	{"ptdr", "pété de rire"},
	{"xptdr", "explosé de rire"},
	{"jpp", "je n'en peux plus"},
	{"tg", "tais-toi"},
	{"ftg", "ferme ta gueule"},
	{"pk", "pourquoi"},
	{"pq", "pourquoi"},
	{"stp", "s'il te plaît"},
	{"svp", "s'il vous plaît"},
	{"tkt", "ne t'inquiète pas"},
	{"bsx", "bisous"},
	{"bz", "bisous"},
	{"cc", "coucou"},
	{"bjr", "bonjour"},
	{"sllt", "salut"},
	{"cv", "ça va"},
	{"tfq", "tu fais quoi"},
	{"koi", "quoi"},
	{"ki", "qui"},
	{"auj", "aujourd'hui"},
	{"a+", "à plus tard"},
	{"osef", "on s'en fiche"},
	{"balek", "je m'en fiche"},
	{"oklm", "au calme"},
	{"askip", "à ce qu'il parait"},
	{"bg", "beau gosse"},
	{"blc", "je m'en fiche"},
	{"fdp", "imbécile"},
	{"niques", "parents"},
	{"cimer", "merci"},
	{"meuf", "femme"},
	{"keum", "homme"},
	{"mec", "homme"},
	{"ouf", "fou"},
	{"truc de ouf", "incroyable"},
	{"chelou", "louche"},
	{"relou", "lourd"},
	{"vénère", "énervé"},
	{"chanmé", "méchant"},
	{"teuf", "fête"},
	{"pécho", "séduire/attraper"},
	{"reup", "père"},
	{"renoi", "noir"},
	{"beuh", "herbe"},
	{"ass", "ça"},
	{"zarbi", "bizarre"},
	{"wesh", "salut/hé"},
	{"kiffer", "aimer"},
	{"seum", "rancoeur"},
	{"thune", "argent"},
	{"fric", "argent"},
	{"balle", "euro"},
	{"boulot", "travail"},
	{"taffer", "travailler"},
	{"bouffer", "manger"},
	{"graille", "manger"},
	{"clope", "cigarette"},
	{"baraque", "maison"},
	{"caisse", "voiture"},
	{"flic", "policier"},
	{"keuf", "policier"},
	{"boloss", "idiot"},
	{"daron", "père"},
	{"daronnes", "mère"},
	{"genre", "comme"},
	{"grave", "totalement"},
	{"myth", "mensonge"},
	{"mytho", "menteur"},
	{"chum", "copain/ami"},
	{"blonde", "copine"},
	{"char", "voiture"},
	{"frette", "froid"},
	{"plate", "ennuyant"},
	{"magané", "abimé/fatigué"},
	{"jaser", "discuter"},
	{"niaiseux", "idiot"},
	{"coche", "génial"},
	{"écoeurant", "génial"},
	{"tiguidou", "d'accord"},
	{"pantoute", "pas du tout"},
	{"piasse", "dollar"},
	{"bibitte", "insecte"},
	{"capoter", "paniquer"},
	{"lâcher un wack", "crier"},
	{"pogner", "attraper"},
	{"tu veux-tu", "veux-tu"},
	{"icitte", "ici"},
	{"asteure", "maintenant"},
	{"tanné", "en avoir marre"},
	{"checker", "regarder"},
	{"canceller", "annuler"},
	{"breuvage", "boisson"},
	{"gosses", "testicules"},
	{"gg", "bien joué"},
	{"noob", "débutant"},
	{"lag", "ralentissement"},
	{"bug", "erreur"},
	{"hack", "triche"},
	{"pv", "message privé"},
	{"mp", "message privé"},
	{"re", "rebonjour"},
	{"ping", "latence"},
	{"ban", "bannir"},
	{"kick", "exclure"},
	{"rush", "attaquer vite"},
	{"camp", "rester statique"},
	{"rageux", "mauvais perdant"},
	{"merde", "zut"},
	{"putain", "mince"},
	{"connard", "imbécile"},
	{"connasse", "imbécile"},
	{"salope", "femme méchante"},
	{"pute", "prostituée"},
	{"batard", "salaud"},
	{"enculé", "salaud"},
	{"nique", "coucher avec"},
	{"niquer", "casser/battre"},
	{"foutre", "sperme"},
	{"chiant", "ennuyeux"},
	{"gueule", "bouche"},
	{"con", "idiot"},
	{"debile", "idiot"},
	{"bite", "pénis"},
	{"teub", "pénis"},
	{"queue", "pénis"},
	{"chatte", "vagin"},
	{"foufoune", "vagin"},
	{"couilles", "testicules"},
	{"boule", "fesses"},
	{"cul", "fesses"},
	{"baise", "sexe"},
	{"baiser", "faire l'amour"},
	{"branler", "masturber"},
	{"sucer", "faire une fellation"},
	{"fdp", "fils de pute"},
	{"ntm", "nique ta mère"},
	{"vtff", "va te faire foutre"},
	{"tg", "tais-toi"},
	{"ftg", "ferme ta gueule"},
	{"raf", "je m'en fiche"},
	{"osef", "je m'en fiche"},
	{"balek", "je m'en fiche"},
	{"blc", "je m'en fiche"},
	{"oklm", "tranquille"},
	{"klm", "tranquille"},
	{"tabarnak", "putain"},
	{"calisse", "putain"},
	{"crisse", "putain"},
	{"osti", "merde"},
	{"ostie", "merde"},
	{"astie", "merde"},
	{"ciboire", "bordel"},
	{"viarge", "merde"},
	{"saint-crème", "mon dieu"},
	{"marde", "merde"},
	{"tabarouette", "zut"},
	{"tabarnouche", "zut"},
	{"caline", "zut"},
	{"cristie", "zut"},
	{"cave", "idiot"},
	{"epais", "idiot"},
	{"sans-dessein", "idiot"},
	{"colon", "ignorant"},
	{"tata", "stupide"},
	{"nounoune", "bête"},
	{"guidoune", "prostituée"},
	{"plotte", "vagin"},
	{"graine", "pénis"},
	{"totons", "seins"},
	{"fif", "homosexuel"},
	{"fifi", "faible"},
}
