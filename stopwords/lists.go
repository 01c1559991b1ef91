package stopwords

var lists = map[string]string{
	"en": `a about above after again against all also am an and any are aren't as at
be because been before being below between both but by can can't cannot could couldn't
did didn't do does doesn't doing don't down during each few for from further had hadn't
has hasn't have haven't having he he'd he'll he's her here here's hers herself him himself
his how how's i i'd i'll i'm i've if in into is isn't it it's its itself just let's me
more most mr mrs ms mustn't my myself no nor not now of off on once only or other ought our
ours ourselves out over own said same say says shan't she she'd she'll she's should
shouldn't so some such than that that's the their theirs them themselves then there
there's these they they'd they'll they're they've this those through to too under until
up very was wasn't we we'd we'll we're we've were weren't what what's when when's where
where's which while who who's whom why why's will with won't would wouldn't you you'd
you'll you're you've your yours yourself yourselves`,

	"de": `aber alle allem allen aller alles als also am an ander andere anderem anderen
anderer anderes auch auf aus bei bin bis bist da damit dann das dass dasselbe dazu dein
deine dem den denn der des dessen die dies diese diesem diesen dieser dieses dir doch dort
du durch ein eine einem einen einer eines einig einige er es etwas euer eure für gegen
gewesen hab habe haben hat hatte hatten hier hin hinter ich ihm ihn ihnen ihr ihre im in
indem ins ist jede jedem jeden jeder jedes jene jetzt kann kein keine können man manche
mein meine mich mir mit muss musste nach nicht nichts noch nun nur ob oder ohne sehr sein
seine sich sie sind so solche soll sollte sondern sonst über um und uns unser unter viel
vom von vor war waren warst was weil weiter welche wenn werde werden wie wieder will wir
wird wo wollen wollte würde würden zu zum zur zwar zwischen`,

	"es": `a al algo algunas algunos ante antes como con contra cual cuando de del desde
donde durante e el ella ellas ellos en entre era erais eran eras eres es esa esas ese eso
esos esta estaba estado estamos estan estar este esto estos fue fueron fui ha hay la las le
les lo los más me mi mis mucho muy nada ni no nos nosotros o os otra otro para pero poco
por porque que quien se sea ser si sido sin sobre su sus también tanto te tiene tienen
todo todos tu tus un una uno unos y ya yo`,

	"fr": `a au aux avec ce ces cette dans de des du elle en et eux il ils je la le les
leur leurs lui ma mais me même mes moi mon ne nos notre nous on ou où par pas pour qu que
qui sa se ses son sur ta te tes toi ton tu un une vos votre vous c d j l m n s t y été
était étaient être avait avaient a ont sont est sera ont fait plus comme tout tous aussi`,

	"it": `a ad al alla alle allo agli ai anche che chi ci come con contro cui da dal dalla
dalle dei del della delle dello di dove e ed è gli ha hanno il in io la le lei lo loro lui
ma mi mia mio ne nei nel nella nelle noi non o per perché più quale quando questa questo
se sei si sia sono su sua sue sui sul sulla suo tra tu tutti tutto un una uno vi voi`,

	"pt": `a ao aos as até com como da das de dela dele deles do dos e ela elas ele eles
em entre era essa esse esta este eu foi for foram há isso isto já lhe mais mas me mesmo
meu minha muito na nas não nem no nos nós o os ou para pela pelas pelo pelos por qual
quando que quem se sem ser seu sua são também te tem tinha um uma você`,

	"nl": `aan al alles als altijd andere ben bij daar dan dat de der deze die dit doch doen
door dus een eens en er ge geen geweest haar had heb hebben heeft hem het hier hij hoe hun
iemand iets ik in is ja je kan kon kunnen maar me meer men met mij mijn moet na naar niet
niets nog nu of om omdat onder ons ook op over reeds te tegen toch toen tot u uit uw van
veel voor want waren was wat werd wezen wie wil worden wordt zal ze zelf zich zij zijn zo
zonder zou`,
}
