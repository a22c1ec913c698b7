package sentiment

// lexicon is an AFINN-style word polarity table. Weights range from -5 to +5.
// Only words present here contribute to a text's score; everything else is
// weight 0.
var lexicon = map[string]int{
	"abandon": -2, "abuse": -3, "accept": 1, "accident": -2, "ache": -2,
	"achievement": 3, "admire": 3, "adorable": 3, "adore": 3, "advantage": 2,
	"adventure": 2, "afraid": -2, "aggressive": -2, "agree": 1, "alarm": -2,
	"alive": 1, "alone": -2, "amazing": 4, "anger": -3, "angry": -3,
	"annoy": -2, "annoyed": -2, "annoying": -2, "anxious": -2, "apology": -1,
	"appreciate": 2, "appreciated": 2, "approval": 2, "argue": -2, "argument": -2,
	"arrogant": -2, "ashamed": -2, "attack": -1, "attract": 1, "attractive": 2,
	"average": -1, "avoid": -1, "award": 3, "awesome": 4, "awful": -3,
	"awkward": -2, "bad": -3, "badly": -3, "ban": -2, "bargain": 2,
	"beautiful": 3, "beauty": 3, "belittle": -2, "beloved": 3, "benefit": 2,
	"best": 3, "better": 2, "big": 1, "bitter": -2, "bizarre": -2,
	"blame": -2, "bless": 2, "blessed": 3, "blessing": 3, "block": -1,
	"bold": 2, "bomb": -1, "bonus": 2, "boost": 1, "bore": -2,
	"bored": -2, "boring": -3, "boycott": -2, "brave": 2, "breathtaking": 5,
	"bright": 1, "brilliant": 4, "broke": -2, "broken": -1, "bullshit": -4,
	"bully": -2, "calm": 2, "cancel": -1, "cancelled": -1, "care": 2,
	"celebrate": 3, "celebrated": 3, "celebrating": 3, "celebration": 3,
	"challenge": -1, "champion": 2, "chance": 2, "chaos": -2, "chaotic": -2,
	"charm": 3, "charming": 3, "cheap": -1, "cheat": -3, "cheated": -3,
	"cheer": 2, "cheerful": 2, "cheers": 2, "clean": 2, "clever": 2,
	"collapse": -2, "comedy": 1, "comfort": 2, "comfortable": 2, "commit": 1,
	"complain": -2, "complaint": -2, "compliment": 2, "concern": -2,
	"concerned": -2, "confident": 2, "confuse": -2, "confused": -2,
	"congrats": 2, "congratulation": 2, "congratulations": 2, "cool": 1,
	"courage": 2, "courageous": 2, "crap": -3, "crash": -2, "crazy": -2,
	"creative": 2, "crime": -3, "crisis": -3, "critic": -2, "criticism": -2,
	"cruel": -3, "cry": -1, "crying": -2, "curious": 1, "cute": 2,
	"cutting": -1, "damage": -3, "damn": -4, "danger": -2, "dangerous": -2,
	"daring": 2, "dark": -1, "dead": -3, "deadly": -3, "dear": 2,
	"death": -2, "defeat": -2, "defect": -3, "delicious": 3, "delight": 3,
	"delighted": 3, "delightful": 3, "deny": -2, "depressed": -2,
	"depressing": -2, "desperate": -3, "despise": -2, "destroy": -3,
	"destruction": -3, "devastated": -2, "die": -3, "difficult": -1,
	"dirty": -2, "disappoint": -2, "disappointed": -2, "disappointing": -2,
	"disappointment": -2, "disaster": -2, "disgust": -3, "disgusted": -3,
	"disgusting": -3, "dislike": -2, "dismal": -2, "dispute": -2,
	"disrespect": -2, "distress": -2, "disturb": -2, "dominate": 1,
	"doom": -2, "doubt": -1, "drama": -2, "dream": 1, "dull": -2,
	"dumb": -3, "eager": 2, "easy": 1, "ecstatic": 4, "effective": 2,
	"elegant": 2, "embarrass": -2, "embarrassed": -2, "embarrassing": -2,
	"empower": 2, "empty": -1, "encourage": 2, "energetic": 2, "engage": 1,
	"engaging": 2, "enjoy": 2, "enjoyed": 2, "enjoying": 2, "enthusiastic": 3,
	"epic": 2, "error": -2, "evil": -3, "excellence": 3, "excellent": 3,
	"excite": 3, "excited": 3, "excitement": 3, "exciting": 3, "exclusive": 2,
	"excuse": -1, "exhausted": -2, "expensive": -2, "fabulous": 4, "fail": -2,
	"failed": -2, "failure": -2, "fair": 2, "fake": -3, "fame": 1,
	"fantastic": 4, "fascinate": 3, "fascinating": 3, "fatigue": -2,
	"favorite": 2, "favourite": 2, "fear": -2, "fearless": 2, "festive": 2, "fiasco": -3, "fight": -1, "fine": 2, "fire": -2,
	"fired": -2, "flawless": 2, "flop": -2, "flu": -2, "fool": -2,
	"foolish": -2, "forget": -1, "forgive": 1, "fortunate": 2, "fraud": -4,
	"free": 1, "freedom": 2, "fresh": 1, "friendly": 2, "frustrated": -2,
	"frustrating": -2, "frustration": -2, "fun": 4, "funny": 4, "furious": -3,
	"gain": 2, "generous": 2, "genius": 3, "gift": 2, "glad": 3,
	"glamorous": 3, "gloomy": -2, "glorious": 2, "glory": 2, "good": 3,
	"gorgeous": 3, "grace": 1, "graceful": 2, "grateful": 3, "gratitude": 2,
	"great": 3, "greed": -3, "greedy": -2, "grief": -2, "gross": -2,
	"growth": 2, "guilt": -3, "guilty": -3, "happiness": 3, "happy": 3,
	"harm": -2, "harmful": -2, "harsh": -2, "hate": -3, "hated": -3,
	"hates": -3, "hating": -3, "hatred": -3, "heal": 2, "healthy": 2,
	"heartbreaking": -3, "heartfelt": 3, "heaven": 2, "hell": -4, "help": 2,
	"helpful": 2, "helpless": -2, "hero": 2, "hesitant": -2, "hilarious": 2,
	"honest": 2, "honor": 2, "honour": 2, "hope": 2, "hopeful": 2,
	"hopeless": -2, "horrible": -3, "horrific": -3, "horror": -3, "hug": 2,
	"huge": 1, "humiliated": -3, "humor": 2, "humour": 2, "hurt": -2,
	"hurting": -2, "hurts": -2, "hype": 1, "ignorant": -2, "ignore": -1,
	"ill": -2, "illegal": -3, "impatient": -2, "importance": 2, "important": 2,
	"impress": 3, "impressed": 3, "impressive": 3, "improve": 2,
	"improvement": 2, "inadequate": -2, "incompetent": -2, "incredible": 4,
	"inspiration": 2, "inspirational": 2, "inspire": 2, "inspired": 2,
	"inspiring": 2, "insult": -2, "insulted": -2, "intense": 1,
	"interesting": 2, "interested": 2, "irritate": -3, "irritated": -3,
	"irritating": -3, "jackpot": 3, "jealous": -2, "joke": 1, "jolly": 2,
	"joy": 3, "joyful": 3, "justice": 2, "keen": 1, "kill": -3,
	"kind": 2, "kindness": 2, "kudos": 3, "lack": -2, "lame": -2,
	"laugh": 1, "laughing": 1, "laughter": 1, "lazy": -1, "legend": 2,
	"legendary": 2, "liar": -3, "lie": -2, "like": 2, "liked": 2,
	"likes": 2, "limited": -1, "lit": 3, "litigation": -1, "lively": 2,
	"lonely": -2, "lose": -3, "loser": -3, "losing": -3, "loss": -3,
	"lost": -3, "love": 3, "loved": 3, "lovely": 3, "loves": 3,
	"loving": 2, "loyal": 3, "luck": 3, "lucky": 3, "mad": -3,
	"magic": 1, "magical": 1, "magnificent": 3, "marvel": 3, "marvelous": 3,
	"masterpiece": 4, "mess": -2, "messy": -2, "mindblowing": 3, "miracle": 4,
	"miserable": -3, "misery": -2, "miss": -2, "missed": -2, "mistake": -2,
	"mock": -2, "motivate": 1, "motivated": 2, "motivation": 1, "mourn": -2,
	"murder": -2, "nasty": -3, "negative": -2, "nervous": -2, "nice": 3,
	"nightmare": -3, "noisy": -1, "nonsense": -2, "notorious": -2,
	"obnoxious": -3, "obsessed": 2, "offend": -2, "offended": -2,
	"offensive": -2, "opportunity": 2, "optimism": 2, "optimistic": 2,
	"outrage": -3, "outraged": -3, "outrageous": -3, "outstanding": 5,
	"overjoyed": 4, "overwhelmed": -2, "pain": -2, "painful": -2,
	"panic": -3, "paradise": 3, "passion": 1, "passionate": 2, "pathetic": -2,
	"peace": 2, "peaceful": 2, "perfect": 3, "perfection": 3, "perfectly": 3,
	"pessimistic": -2, "phenomenal": 4, "pleasant": 3, "please": 1,
	"pleased": 3, "pleasure": 3, "poor": -2, "popular": 3, "positive": 2,
	"powerful": 2, "praise": 3, "precious": 3, "pretty": 1, "problem": -2,
	"problems": -2, "progress": 2, "promise": 1, "promote": 1, "protest": -2,
	"proud": 2, "punish": -2, "quality": 2, "rage": -2, "reach": 1,
	"recommend": 2, "recommended": 2, "regret": -2, "reject": -1,
	"rejected": -2, "rejoice": 4, "relaxed": 2, "relief": 1, "relieved": 2,
	"remarkable": 2, "resolve": 2, "respect": 2, "respected": 2,
	"restless": -2, "reward": 2, "rich": 2, "ridiculous": -3, "rig": -1,
	"rigged": -1, "risk": -2, "rob": -2, "romantic": 2, "rotten": -3,
	"rude": -2, "ruin": -2, "ruined": -2, "sad": -2, "sadness": -2,
	"safe": 1, "satisfied": 2, "save": 2, "scam": -2, "scandal": -3,
	"scare": -2, "scared": -2, "scary": -2, "secure": 2, "selfish": -3,
	"sensational": 3, "share": 1, "shared": 1, "shame": -2, "shameful": -2,
	"shine": 1, "shock": -2, "shocked": -2, "shocking": -2, "shoot": -1,
	"sick": -2, "significant": 1, "silly": -1, "sincere": 2, "skeptical": -2,
	"slam": -2, "smart": 1, "smile": 2, "smiling": 2, "solid": 2,
	"solution": 1, "solve": 1, "sorrow": -2, "sorry": -1, "spam": -2,
	"spectacular": 3, "splendid": 3, "steal": -2, "stink": -2, "stolen": -2,
	"stop": -1, "stress": -1, "stressed": -2, "stressful": -2,
	"strong": 2, "struggle": -2, "struggling": -2, "stunning": 4, "stupid": -2,
	"succeed": 3, "success": 2, "successful": 3, "suck": -3, "sucks": -3,
	"suffer": -2, "suffering": -2, "super": 3, "superb": 5, "superior": 2,
	"support": 2, "supported": 2, "supportive": 2, "surprise": 1,
	"surprised": 1, "survive": 2, "survived": 2, "sweet": 2, "talent": 2,
	"talented": 2, "terrible": -3, "terribly": -3, "terrific": 4,
	"terrified": -3, "terror": -3, "thank": 2, "thankful": 2, "thanks": 2,
	"thoughtful": 2, "threat": -2, "threaten": -2, "thrilled": 5, "tired": -2,
	"top": 2, "tough": -2, "toxic": -3, "tragedy": -2, "tragic": -2,
	"triumph": 4, "trouble": -2, "true": 2, "trust": 1, "trusted": 2,
	"ugly": -3, "unbelievable": -1, "uncomfortable": -2, "unfair": -2,
	"unfortunate": -2, "unhappy": -2, "unimpressed": -2, "unprofessional": -2,
	"upset": -2, "useful": 2, "useless": -2, "vague": -2, "valuable": 2,
	"vibrant": 3, "victory": 3, "violence": -3, "violent": -3, "vision": 1,
	"waste": -1, "wasted": -2, "weak": -2, "wealth": 3, "weird": -2,
	"welcome": 2, "whine": -2, "win": 4, "winner": 4, "winning": 4,
	"wish": 1, "won": 3, "wonderful": 4, "worn": -1, "worried": -3,
	"worry": -3, "worse": -3, "worst": -3, "worth": 2, "worthless": -2,
	"worthy": 2, "wow": 4, "wrong": -2, "yummy": 3,
}
