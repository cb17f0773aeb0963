package quotes

// builtinTemplates is the stock greeting table. Entries missing here fall
// through Lookup as not found.
var builtinTemplates = []Template{
	{Key{Birthday, Self, 1, Hindi}, "आज मेरा [Age]वाँ जन्मदिन है। हे प्रभु, मेरी अब तक की भूलों को क्षमा करें और आगे मुझे सद्बुद्धि व सन्मार्ग पर चलने की शक्ति दें।"},
	{Key{Birthday, Self, 1, English}, "Today is my [Age]th birthday. Dear God, please forgive my past mistakes and grant me wisdom and the strength to walk on the right path ahead."},
	{Key{Birthday, Self, 2, Hindi}, "ईश्वर की कृपा से आज मेरे जीवन के [Age] वर्ष पूर्ण हुए। मेरी गलतियों को माफ करें और आने वाला जीवन शुभ, सफल व मंगलमय बनाएं।"},
	{Key{Birthday, Self, 2, English}, "By God's grace, [Age] years of my life are complete today. Please forgive my mistakes and bless the life ahead to be auspicious, successful, and joyful."},
	{Key{Birthday, Self, 3, Hindi}, "आज [Age] वर्ष पूरे होने पर मैं ईश्वर के चरणों में नमन करता हूँ। हे भगवान, मेरी रक्षा करें और आगे मेरे लिए अच्छा ही अच्छा हो, ऐसी कृपा करें।"},
	{Key{Birthday, Self, 3, English}, "On completing [Age] years today, I bow at God's feet. O Lord, protect me and bless me so that only good things come my way from here on."},

	{Key{Relationship, Self, 1, Hindi}, "आज हमारी रिलेशनशिप एनिवर्सरी है। हे भगवान, इतना अच्छा जीवनसाथी देने के लिए धन्यवाद, हमारा रिश्ता सदा प्रेम व विश्वास से भरा रहे।"},
	{Key{Relationship, Self, 1, English}, "Today is our relationship anniversary. Thank you, God, for such a wonderful partner — may our relationship always be filled with love and trust."},
	{Key{Relationship, Self, 2, Hindi}, "ईश्वर का आभार है कि आपने हमें एक-दूसरे से जोड़ा। हमारे रिश्ते पर अपनी कृपा बनाए रखें और जीवन को सुखमय करें।"},
	{Key{Relationship, Self, 2, English}, "We are grateful to God for bringing us together. Please continue to bless our relationship and make our lives filled with happiness."},
	{Key{Relationship, Self, 3, Hindi}, "आज हमारे प्रेम संबंध का पावन दिन है। हे प्रभु, हमारा साथ यूँ ही बना रहे और हमारे जीवन में हमेशा शांति रहे।"},
	{Key{Relationship, Self, 3, English}, "Today is the sacred day of our love bond. O Lord, may we always stay together and may there always be peace in our lives."},

	{Key{Marriage, Self, 1, Hindi}, "आज हमारी विवाह वर्षगांठ है। हे ईश्वर, इतने अच्छे जीवनसाथी के लिए धन्यवाद, हमारे वैवाहिक जीवन को सदा सुखी रखें।"},
	{Key{Marriage, Self, 1, English}, "Today is our wedding anniversary. Thank you, God, for such a wonderful life partner — please keep our married life always happy."},
	{Key{Marriage, Self, 2, Hindi}, "भगवान की कृपा से आज हम अपनी शादी की सालगिरह मना रहे हैं। हम दोनों पर अपनी अनुकंपा बनाए रखें और जीवन को आनंदमय करें।"},
	{Key{Marriage, Self, 2, English}, "By God's grace, we are celebrating our wedding anniversary today. Please continue to shower your blessings on us both and fill our life with joy."},
	{Key{Marriage, Self, 3, Hindi}, "आज हमारे दांपत्य जीवन का एक और पवित्र वर्ष पूर्ण हुआ। हे प्रभु, हमारे रिश्ते में प्रेम, समझ और समर्पण बनाए रखें।"},
	{Key{Marriage, Self, 3, English}, "Another sacred year of our married life is complete today. O Lord, please keep love, understanding, and dedication in our relationship."},

	{Key{Marriage, Other, 1, Hindi}, "[Years] वर्षों के इस पवित्र बंधन पर [Name] को दिल से हार्दिक बधाई और अनेक शुभकामनाएं।"},
	{Key{Marriage, Other, 1, English}, "Heartfelt congratulations and best wishes to [Name] on [Years] years of this sacred bond."},
	{Key{Marriage, Other, 2, Hindi}, "[Years] वर्षों से प्यार, समर्पण और विश्वास का सुंदर सफर तय करते हुए [Name] को विवाह वर्षगांठ की हार्दिक शुभकामनाएं।"},
	{Key{Marriage, Other, 2, English}, "Warmest wishes to [Name] on their wedding anniversary, celebrating [Years] beautiful years of love, devotion, and trust."},
	{Key{Marriage, Other, 3, Hindi}, "[Name] को [Years]वीं विवाह वर्षगांठ की बहुत-बहुत बधाई।"},
	{Key{Marriage, Other, 3, English}, "Heartiest congratulations to [Name] on their [Years]th wedding anniversary."},

	{Key{Relationship, Other, 1, Hindi}, "[Years] वर्षों से साथ, समझ और प्यार का यह सफर [Name] के लिए हमेशा मुस्कुराहटों से भरा रहे।"},
	{Key{Relationship, Other, 1, English}, "May this beautiful journey of [Years] years of companionship, understanding, and love continue to bring smiles to [Name]."},
	{Key{Relationship, Other, 2, Hindi}, "[Years] वर्षों की खूबसूरत बॉन्डिंग के लिए [Name] को दिल से बधाई और शुभकामनाएं।"},
	{Key{Relationship, Other, 2, English}, "Heartfelt congratulations and best wishes to [Name] for [Years] years of beautiful bonding."},
	{Key{Relationship, Other, 3, Hindi}, "[Name] को [Years]वीं रिलेशनशिप एनिवर्सरी मुबारक।"},
	{Key{Relationship, Other, 3, English}, "Happy [Years]th relationship anniversary to [Name]."},

	{Key{Birthday, Other, 1, Hindi}, "[Name] को जन्मदिन के इस खास अवसर पर ढेर सारी बधाई, खुशियां और उज्जवल भविष्य की शुभकामनाएं।"},
	{Key{Birthday, Other, 1, English}, "Heartiest congratulations to [Name] on this special birthday, with wishes for happiness and a bright future ahead."},
	{Key{Birthday, Other, 2, Hindi}, "इस नए साल के साथ [Name] के जीवन में और अधिक सफलता, स्वास्थ्य और खुशियां आएं — जन्मदिन मुबारक।"},
	{Key{Birthday, Other, 2, English}, "Wishing [Name] greater success, good health, and happiness in the coming year — Happy Birthday."},
	{Key{Birthday, Other, 3, Hindi}, "[Name] को जन्मदिन की हार्दिक बधाई और शुभकामनाएं।"},
	{Key{Birthday, Other, 3, English}, "Heartfelt birthday wishes to [Name]."},

	{Key{Jyanti, Other, 1, Hindi}, "[Naam] की जयंती पर उनके विचारों और आदर्शों को नमन।"},
	{Key{Jyanti, Other, 1, English}, "Salutations to the thoughts and ideals of [Naam] on their birth anniversary."},
	{Key{Jyanti, Other, 2, Hindi}, "[Naam] के जीवन और संघर्ष से प्रेरित होकर, आज हम उनकी जयंती पर श्रद्धांजलि अर्पित करते हैं।"},
	{Key{Jyanti, Other, 2, English}, "Inspired by the life and struggles of [Naam], we offer our tribute on their birth anniversary today."},
	{Key{Jyanti, Other, 3, Hindi}, "[Naam] जयंती पर शत-शत नमन।"},
	{Key{Jyanti, Other, 3, English}, "Respectful salutations on [Naam] Jayanti."},

	{Key{Divas, Other, 1, Hindi}, "[Divas ka Naam] के अवसर पर इसके महत्व को समझें और इसे अपने जीवन का हिस्सा बनाएं।"},
	{Key{Divas, Other, 1, English}, "On the occasion of [Divas ka Naam], let us understand its importance and make it a part of our lives."},
	{Key{Divas, Other, 2, Hindi}, "[Divas ka Naam] हमें जिम्मेदारी, जागरूकता और सकारात्मक बदलाव की याद दिलाता है।"},
	{Key{Divas, Other, 2, English}, "[Divas ka Naam] reminds us of responsibility, awareness, and positive change."},
	{Key{Divas, Other, 3, Hindi}, "[Divas ka Naam] पर देश और समाज के प्रति अपनी जिम्मेदारी को याद करें।"},
	{Key{Divas, Other, 3, English}, "Remember your responsibility towards the nation and society on [Divas ka Naam]."},

	{Key{Festivals, Other, 1, Hindi}, "इस पवित्र अवसर पर आप और आपके परिवार को [Festival Name] की हार्दिक शुभकामनाएं।"},
	{Key{Festivals, Other, 1, English}, "Heartfelt wishes to you and your family on the sacred occasion of [Festival Name]."},
	{Key{Festivals, Other, 2, Hindi}, "[Festival Name] के शुभ अवसर पर सुख, शांति और समृद्धि आपके जीवन में बनी रहे।"},
	{Key{Festivals, Other, 2, English}, "May happiness, peace, and prosperity remain in your life on the auspicious occasion of [Festival Name]."},
	{Key{Festivals, Other, 3, Hindi}, "खुशियों और उमंग से भरा [Festival Name] आपके जीवन को रोशन करे।"},
	{Key{Festivals, Other, 3, English}, "May [Festival Name] filled with joy and enthusiasm illuminate your life."},

	{Key{NewMembers, Other, 1, Hindi}, "[Date] को [Time] पर [Father Name] और [Mother Name] के परिवार में एक नए सदस्य का आगमन हुआ। इस शुभ अवसर पर ढेर सारी बधाइयां।"},
	{Key{NewMembers, Other, 1, English}, "A new member arrived in the family of [Father Name] and [Mother Name] on [Date] at [Time]. Heartiest congratulations on this auspicious occasion."},
	{Key{NewMembers, Other, 2, Hindi}, "भगवान की कृपा से [Date] को [Time] पर [Father Name] और [Mother Name] के घर एक नन्हे मेहमान का आगमन हुआ। परिवार को हार्दिक शुभकामनाएं।"},
	{Key{NewMembers, Other, 2, English}, "By God's grace, a little guest arrived at [Father Name] and [Mother Name]'s home on [Date] at [Time]. Heartfelt wishes to the family."},
	{Key{NewMembers, Other, 3, Hindi}, "[Father Name] और [Mother Name] के घर [Date] को [Time] पर खुशियों ने दस्तक दी — नए सदस्य के आगमन पर बधाई।"},
	{Key{NewMembers, Other, 3, English}, "Happiness knocked on [Father Name] and [Mother Name]'s door on [Date] at [Time] — congratulations on the arrival of a new member."},

	{Key{NewMembers, Self, 1, Hindi}, "[Date] को [Time] पर हमारे परिवार में एक नए सदस्य का स्वागत। इस खुशी को आपके साथ साझा करते हुए हर्ष हो रहा है।"},
	{Key{NewMembers, Self, 1, English}, "Welcoming a new member to our family on [Date] at [Time]. Delighted to share this joy with you."},
	{Key{NewMembers, Self, 2, Hindi}, "भगवान की कृपा से [Date] को [Time] पर हमारे घर एक नन्हे फरिश्ते का आगमन हुआ। आपके आशीर्वाद की अपेक्षा है।"},
	{Key{NewMembers, Self, 2, English}, "By God's grace, a little angel arrived at our home on [Date] at [Time]. Seeking your blessings."},
	{Key{NewMembers, Self, 3, Hindi}, "[Date] को [Time] पर हमारे जीवन में खुशियों का नया अध्याय शुरू हुआ — नए सदस्य के स्वागत में।"},
	{Key{NewMembers, Self, 3, English}, "A new chapter of happiness began in our lives on [Date] at [Time] — welcoming our new family member."},

	{Key{MarriageDateFix, Other, 1, Hindi}, "खुशी के साथ सूचित किया जाता है कि [Name 1] और [Name 2] के विवाह की शुभ तिथि [Date] निश्चित हुई है। आशीर्वाद अपेक्षित।"},
	{Key{MarriageDateFix, Other, 1, English}, "It is joyfully announced that the auspicious wedding date of [Name 1] and [Name 2] has been fixed on [Date]. Blessings are awaited."},
	{Key{MarriageDateFix, Other, 2, Hindi}, "दो परिवारों की रज़ा और आशीर्वाद से [Name 1] और [Name 2] के शुभ विवाह की तिथि [Date] तय हुई।"},
	{Key{MarriageDateFix, Other, 2, English}, "With the consent and blessings of two families, the auspicious wedding date of [Name 1] and [Name 2] has been set on [Date]."},
	{Key{MarriageDateFix, Other, 3, Hindi}, "प्यार और परंपरा के संगम के साथ [Name 1] और [Name 2] के विवाह की शुभ तिथि [Date] निश्चित हुई।"},
	{Key{MarriageDateFix, Other, 3, English}, "With the union of love and tradition, the auspicious wedding date of [Name 1] and [Name 2] has been fixed on [Date]."},

	{Key{MarriageDateFix, Self, 1, Hindi}, "हर्ष के साथ सूचित करते हैं कि हमारे विवाह की शुभ तिथि [Date] निश्चित हुई है। आप सभी का आशीर्वाद और उपस्थिति अपेक्षित है।"},
	{Key{MarriageDateFix, Self, 1, English}, "We are delighted to announce that our wedding date has been fixed on [Date]. Your blessings and presence are requested."},
	{Key{MarriageDateFix, Self, 2, Hindi}, "परिवार और मित्रों के आशीर्वाद से हमारे विवाह की शुभ तिथि [Date] तय हुई है। आपकी उपस्थिति से यह दिन और भी खास होगा।"},
	{Key{MarriageDateFix, Self, 2, English}, "With the blessings of family and friends, our wedding date has been set on [Date]. Your presence will make this day more special."},
	{Key{MarriageDateFix, Self, 3, Hindi}, "नए जीवन की शुरुआत करते हुए, हमारे विवाह की शुभ तिथि [Date] निश्चित की है। आप सभी को निमंत्रण एवं आशीर्वाद की अपेक्षा।"},
	{Key{MarriageDateFix, Self, 3, English}, "Beginning a new life together, we have fixed our wedding date on [Date]. Inviting you all with request for blessings."},
}
